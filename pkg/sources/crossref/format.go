package crossref

import (
	"fmt"
	"strconv"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
)

const titleWidth = 90

// Format renders works as a table under an "Updated" line.
func Format(works []Work, query string, now time.Time) string {
	if len(works) == 0 {
		return fmt.Sprintf("_No Crossref works found for %q._", query)
	}
	t := render.NewTable("Title", "Venue", "Year")
	for _, w := range works {
		year := ""
		if w.Year > 0 {
			year = strconv.Itoa(w.Year)
		}
		t.Row(render.Link(render.Truncate(render.PlainText(w.Title), titleWidth), w.URL()), w.Venue, year)
	}
	return render.Updated(now) + "\n\n" + t.String()
}
