package pubmed

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
)

// Format renders articles as a bullet list under an "Updated" line.
func Format(articles []Article, term string, now time.Time) string {
	if len(articles) == 0 {
		return fmt.Sprintf("_No PubMed articles found for %q._", term)
	}
	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		line := "* " + render.Link(render.PlainText(a.Title), a.URL()) + " — *" + a.Journal + "*"
		if a.PubDate != "" {
			line += ", " + a.PubDate
		}
		if a.FirstAuthor != "" {
			line += " · " + a.FirstAuthor
		}
		lines = append(lines, line)
	}
	return render.Updated(now) + "\n\n" + strings.Join(lines, "\n")
}
