package nasa

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
)

// FormatPicture renders an APOD entry. width is the image width in pixels.
func FormatPicture(p *Picture, width int) string {
	head := fmt.Sprintf("**%s** <sub>— %s</sub>\n\n", p.Title, p.Date)
	if p.IsImage() {
		return head + render.Img(p.URL, p.Title, width) + "\n\n" + p.Explanation
	}
	return head + p.Explanation + "\n\n" + render.Link("Watch", p.URL)
}

// Closest sorts approaches by miss distance and keeps the first n.
// Entries without approach data sort last.
func Closest(approaches []Approach, n int) []Approach {
	sorted := make([]Approach, len(approaches))
	copy(sorted, approaches)
	dist := func(a Approach) float64 {
		if !a.HasApproach {
			return math.Inf(1)
		}
		return a.MissKM
	}
	sort.SliceStable(sorted, func(i, j int) bool { return dist(sorted[i]) < dist(sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// FormatApproaches renders the closest approaches of day as a table.
func FormatApproaches(approaches []Approach, rows int, now time.Time) string {
	if len(approaches) == 0 {
		return fmt.Sprintf("_No close asteroid approaches on %s._", now.UTC().Format(dateLayout))
	}
	t := render.NewTable("Object", "Diameter (m)", "Miss distance", "Speed (km/s)", "Hazardous")
	for _, a := range Closest(approaches, rows) {
		hazard := "No"
		if a.Hazardous {
			hazard = "Yes"
		}
		t.Row(
			render.Link(a.Name, a.URL),
			fmt.Sprintf("%.0f–%.0f", a.DiameterMin, a.DiameterMax),
			render.Thousands(a.MissKM)+" km",
			fmt.Sprintf("%.2f", a.SpeedKMS),
			hazard,
		)
	}
	return render.Updated(now) + "\n\n" + t.String()
}
