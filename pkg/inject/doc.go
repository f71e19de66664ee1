// Package inject replaces the body of marker-delimited regions in a document.
//
// A region is a span of text bounded by a literal start and end delimiter,
// typically a pair of HTML comments in a README:
//
//	<!-- APOD_START -->
//	...generated content...
//	<!-- APOD_END -->
//
// [Inject] swaps whatever sits between the delimiters for new content and
// leaves everything else byte-for-byte intact. Delimiters are matched
// verbatim: "<!-- A.B -->" only matches itself, never "<!-- AxB -->", and the
// content is never interpreted either, so "$1" or "\n" sequences inside it
// land in the document unchanged.
//
// Injection is idempotent. Injecting A and then B leaves exactly B in the
// body, because the inserted text is always framed as
//
//	start + "\n" + content + "\n" + end
//
// regardless of the whitespace the previous body had.
package inject
