package usgs

import (
	"fmt"
	"strconv"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
)

const placeWidth = 60

// Format renders quakes as a magnitude table under an "Updated" line. An
// empty list renders a quiet-week note instead.
func Format(quakes []Quake, minMag float64, days int, now time.Time) string {
	if len(quakes) == 0 {
		return fmt.Sprintf("_No M %s+ earthquakes in the past %d days._",
			strconv.FormatFloat(minMag, 'f', -1, 64), days)
	}
	t := render.NewTable("M", "Location", "Depth", "Time (UTC)")
	for _, q := range quakes {
		place := q.Place
		if place == "" {
			place = "Unknown location"
		}
		mag := "?"
		if q.HasMagnitude {
			mag = fmt.Sprintf("%.1f", q.Magnitude)
		}
		depth := "?"
		if q.HasDepth {
			depth = fmt.Sprintf("%.0f km", q.DepthKM)
		}
		t.Row(
			"**"+mag+"**",
			render.Link(render.Truncate(place, placeWidth), q.URL),
			depth,
			q.Time.UTC().Format("2006-01-02 15:04"),
		)
	}
	return render.Updated(now) + "\n\n" + t.String()
}
