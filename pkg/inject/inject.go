package inject

import "strings"

// Region is a named pair of literal delimiters.
type Region struct {
	Name  string
	Start string
	End   string
}

// Span locates a region inside a document. All offsets are byte offsets.
type Span struct {
	Start     int // offset of the start delimiter
	BodyStart int // first byte after the start delimiter
	BodyEnd   int // offset of the end delimiter
	End       int // first byte after the end delimiter
}

// Find locates the leftmost start delimiter and the leftmost end delimiter
// that follows it. Empty delimiters never match.
func Find(document, start, end string) (Span, bool) {
	if start == "" || end == "" {
		return Span{}, false
	}
	i := strings.Index(document, start)
	if i < 0 {
		return Span{}, false
	}
	bodyStart := i + len(start)
	j := strings.Index(document[bodyStart:], end)
	if j < 0 {
		return Span{}, false
	}
	bodyEnd := bodyStart + j
	return Span{
		Start:     i,
		BodyStart: bodyStart,
		BodyEnd:   bodyEnd,
		End:       bodyEnd + len(end),
	}, true
}

// Inject replaces the body of the region bounded by start and end with
// content. It reports whether a replacement happened; when the delimiters are
// not found the document is returned unchanged.
func Inject(document, start, end, content string) (string, bool) {
	span, ok := Find(document, start, end)
	if !ok {
		return document, false
	}
	var b strings.Builder
	b.Grow(len(document) - (span.BodyEnd - span.BodyStart) + len(content) + 2)
	b.WriteString(document[:span.BodyStart])
	b.WriteByte('\n')
	b.WriteString(content)
	b.WriteByte('\n')
	b.WriteString(document[span.BodyEnd:])
	return b.String(), true
}

// Body returns the text strictly between the delimiters.
func Body(document, start, end string) (string, bool) {
	span, ok := Find(document, start, end)
	if !ok {
		return "", false
	}
	return document[span.BodyStart:span.BodyEnd], true
}

// Apply injects content into the region. See [Inject].
func (r Region) Apply(document, content string) (string, bool) {
	return Inject(document, r.Start, r.End, content)
}

// Find locates the region in document. See [Find].
func (r Region) Find(document string) (Span, bool) {
	return Find(document, r.Start, r.End)
}

// Overlaps reports pairs of regions whose spans overlap or nest inside
// document. Injection does not guard against this; callers use it to warn.
func Overlaps(document string, regions []Region) [][2]string {
	type located struct {
		name string
		span Span
	}
	var found []located
	for _, r := range regions {
		if span, ok := r.Find(document); ok {
			found = append(found, located{r.Name, span})
		}
	}

	var pairs [][2]string
	for i := range found {
		for j := i + 1; j < len(found); j++ {
			a, b := found[i].span, found[j].span
			if a.Start < b.End && b.Start < a.End {
				pairs = append(pairs, [2]string{found[i].name, found[j].name})
			}
		}
	}
	return pairs
}
