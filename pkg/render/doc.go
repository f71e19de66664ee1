// Package render holds the small formatting helpers shared by every source:
// markdown tables, links, images, the "Updated" sub-line, number and text
// shaping, chart image URLs and markdown-to-HTML conversion.
//
// # Tables
//
// [Table] builds GitHub-flavoured markdown tables. Cells are escaped so a
// pipe inside a paper title cannot break the layout:
//
//	t := render.NewTable("M", "Location", "Depth")
//	t.Row("**6.1**", render.Link("Off the coast", url), "10 km")
//	fmt.Println(t)
//
// # Charts
//
// The chart sources do not draw anything themselves. [QuickChart] encodes a
// Chart.js configuration into a quickchart.io URL which the README embeds
// with [Img]; GitHub then fetches the picture.
//
// # Preview
//
// [Markdown] converts a whole document to HTML with goldmark and the GFM
// extension, which is how `readmefeed preview` lets you eyeball the result.
package render
