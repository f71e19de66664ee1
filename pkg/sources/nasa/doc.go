// Package nasa renders NASA open API feeds: the Astronomy Picture of the Day
// and today's near-Earth object close approaches.
//
// Both endpoints live on api.nasa.gov and share one API key. The DEMO_KEY
// default works but is limited to 30 requests an hour per IP, which CI
// runners share; set NASA_API_KEY for anything scheduled.
//
// # APOD
//
// An image is embedded inline at 680px followed by the explanation. Video
// days have no image, so the explanation is followed by a Watch link.
//
// # NEO
//
// The feed for the current UTC date is sorted by miss distance and the five
// closest objects are tabulated with their estimated diameter range,
// distance, relative speed and hazard flag.
package nasa
