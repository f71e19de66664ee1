package arxiv

import (
	"strings"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
)

const tickerSeparator = " &nbsp;·&nbsp; "

// Ticker renders every paper as a link inside a scrolling marquee, under an
// "Updated" line.
func Ticker(papers []Paper, now time.Time) string {
	links := make([]string, len(papers))
	for i, p := range papers {
		links[i] = render.Anchor(p.Title, p.Link)
	}
	return render.Updated(now) + "<br>\n" +
		`<marquee scrollamount="4" direction="left">` + strings.Join(links, tickerSeparator) + "</marquee>"
}

// Table renders the first rows papers as a Title, Authors, Cat table.
func Table(papers []Paper, rows int) string {
	t := render.NewTable("Title", "Authors", "Cat")
	for i, p := range papers {
		if i == rows {
			break
		}
		cat := ""
		if p.Category != "" {
			cat = "`" + p.Category + "`"
		}
		t.Row(render.Link(p.Title, p.Link), Authors(p.Authors), cat)
	}
	return t.String()
}

// Authors shortens an author list to two names plus "et al.".
func Authors(names []string) string {
	short := make([]string, 0, 2)
	for i, n := range names {
		if i == 2 {
			break
		}
		surname, _, _ := strings.Cut(n, ",")
		short = append(short, strings.TrimSpace(surname))
	}
	out := strings.Join(short, ", ")
	if len(names) > 2 {
		out += " et al."
	}
	return out
}
