package render

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// TimeFormat is the timestamp layout used in rendered fragments.
const TimeFormat = "2006-01-02 15:04 UTC"

// Stamp formats t in UTC using [TimeFormat].
func Stamp(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// Updated returns the "<sub>Updated …</sub>" line placed above tables.
func Updated(t time.Time) string {
	return "<sub>Updated " + Stamp(t) + "</sub>"
}

// Link returns a markdown link. An empty url yields "#" as the target.
func Link(text, url string) string {
	if url == "" {
		url = "#"
	}
	return "[" + escapeLinkText(text) + "](" + url + ")"
}

// Anchor returns an HTML <a> element, for contexts where markdown is not
// interpreted (inside <marquee>, for example). text is HTML-escaped.
func Anchor(text, url string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, escapeAttr(url), html.EscapeString(text))
}

// Img returns an HTML <img> element. A zero width omits the attribute.
func Img(src, alt string, width int) string {
	if width > 0 {
		return fmt.Sprintf(`<img src="%s" width="%d" alt="%s" />`, escapeAttr(src), width, escapeAttr(alt))
	}
	return fmt.Sprintf(`<img src="%s" alt="%s" />`, escapeAttr(src), escapeAttr(alt))
}

// Table is a markdown table builder.
type Table struct {
	header []string
	rows   [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(header ...string) *Table {
	return &Table{header: header}
}

// Row appends a row. Missing cells are left blank and extra cells dropped.
func (t *Table) Row(cells ...string) *Table {
	row := make([]string, len(t.header))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// String renders the table without a trailing newline.
func (t *Table) String() string {
	var b strings.Builder
	writeRow(&b, t.header)
	b.WriteString("\n|")
	for _, h := range t.header {
		b.WriteString(strings.Repeat("-", len(h)+2))
		b.WriteByte('|')
	}
	for _, row := range t.rows {
		b.WriteByte('\n')
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteByte('|')
	for _, c := range cells {
		b.WriteByte(' ')
		b.WriteString(escapeCell(c))
		b.WriteString(" |")
	}
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func escapeCell(s string) string {
	return cellReplacer.Replace(s)
}

var linkTextReplacer = strings.NewReplacer("[", `\[`, "]", `\]`)

func escapeLinkText(s string) string {
	return linkTextReplacer.Replace(s)
}

var attrReplacer = strings.NewReplacer(`"`, "&quot;", "<", "&lt;", ">", "&gt;")

func escapeAttr(s string) string {
	return attrReplacer.Replace(s)
}
