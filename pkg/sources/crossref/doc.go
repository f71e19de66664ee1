// Package crossref lists the newest scholarly works matching a query from
// the Crossref REST API (https://api.crossref.org/works).
//
// Results are sorted by publication date, newest first, and rendered as a
// Title, Venue, Year table with DOI links.
//
// # Parameters
//
//	query  free-text query (default "seismology")
//	rows   number of works (default 5)
package crossref
