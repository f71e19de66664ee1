// Package worldbank renders a World Bank development indicator for one
// country as a short table of recent values and a trend chart.
//
// Data comes from the v2 indicators API (https://api.worldbank.org/v2),
// which needs no key. The chart is a quickchart.io line chart embedded as
// an image.
//
// # Parameters
//
//	country    ISO code or aggregate, default WLD (world)
//	indicator  indicator id, default SP.POP.TOTL (population)
//	years      look-back window in years, default 10
//	rows       table rows, default 5
package worldbank
