package github

import (
	"fmt"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
)

const descriptionWidth = 80

// Format renders repositories as a table under an "Updated" line.
func Format(repos []Repo, query string, now time.Time) string {
	if len(repos) == 0 {
		return fmt.Sprintf("_No repositories found for %q._", query)
	}
	t := render.NewTable("Repository", "★", "Language", "Description")
	for _, r := range repos {
		desc := render.Truncate(render.CollapseSpace(r.Description), descriptionWidth)
		if r.Archived {
			desc = "_(archived)_ " + desc
		}
		t.Row(render.Link(r.FullName, r.URL), render.Thousands(float64(r.Stars)), r.Language, desc)
	}
	return render.Updated(now) + "\n\n" + t.String()
}
