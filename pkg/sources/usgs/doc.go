// Package usgs renders the strongest recent earthquakes from the USGS
// FDSN event service (https://earthquake.usgs.gov/fdsnws/event/1).
//
// The query asks for GeoJSON events above a minimum magnitude within the
// last few days, ordered by magnitude. No key is required.
//
// # Parameters
//
//	min   minimum magnitude (default 4.5)
//	days  look-back window in days (default 7)
//	rows  number of events (default 5)
package usgs
