package iss

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
)

// Coordinates renders a position as "12.34°S, 45.60°E".
func Coordinates(p *Position) string {
	ns, ew := "N", "E"
	if p.Latitude < 0 {
		ns = "S"
	}
	if p.Longitude < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.2f°%s, %.2f°%s", math.Abs(p.Latitude), ns, math.Abs(p.Longitude), ew)
}

// MapURL links to the position on OpenStreetMap.
func MapURL(p *Position) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.4f&mlon=%.4f#map=3/%.4f/%.4f",
		p.Latitude, p.Longitude, p.Latitude, p.Longitude)
}

// Crew groups people by craft, in order of first appearance.
func Crew(people []Person) string {
	var crafts []string
	byCraft := make(map[string][]string)
	for _, p := range people {
		if _, ok := byCraft[p.Craft]; !ok {
			crafts = append(crafts, p.Craft)
		}
		byCraft[p.Craft] = append(byCraft[p.Craft], p.Name)
	}
	groups := make([]string, len(crafts))
	for i, c := range crafts {
		groups[i] = c + ": " + strings.Join(byCraft[c], ", ")
	}
	return strings.Join(groups, " · ")
}

// Format renders the position line and, when people is non-nil, the crew
// line.
func Format(p *Position, people []Person, now time.Time) string {
	out := render.Updated(now) + "\n\n" +
		"**ISS position** &nbsp; " + Coordinates(p) + " &nbsp; " + render.Link("map", MapURL(p))
	if people != nil {
		out += fmt.Sprintf("\n\n**People in space** &nbsp; %d", len(people))
		if len(people) > 0 {
			out += " &nbsp; " + Crew(people)
		}
	}
	return out
}
