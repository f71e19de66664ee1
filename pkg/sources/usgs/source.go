package usgs

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Kind registers the earthquake source.
var Kind = &sources.Kind{
	Name:        "usgs",
	Title:       "USGS earthquakes",
	Description: "Strongest earthquakes of the past week",
	API:         "earthquake.usgs.gov",
	New:         newSource,
}

// Source renders the strongest recent earthquakes.
type Source struct {
	client *Client
	now    func() time.Time
	minMag float64
	days   int
	rows   int
}

func newSource(env sources.Env, p sources.Params) (sources.Source, error) {
	minMag, err := p.Float("min", 4.5)
	if err != nil {
		return nil, err
	}
	days, err := p.Bounded("days", 7, 1, 30)
	if err != nil {
		return nil, err
	}
	rows, err := p.Bounded("rows", 5, 1, 50)
	if err != nil {
		return nil, err
	}
	return &Source{
		client: NewClient(env),
		now:    env.Clock(),
		minMag: minMag,
		days:   days,
		rows:   rows,
	}, nil
}

// Kind implements sources.Source.
func (s *Source) Kind() string { return Kind.Name }

// Render implements sources.Source.
func (s *Source) Render(ctx context.Context) (string, error) {
	now := s.now()
	quakes, err := s.client.Strongest(ctx, Query{
		Since:        now.AddDate(0, 0, -s.days),
		MinMagnitude: s.minMag,
		Limit:        s.rows,
	})
	if err != nil {
		return "", err
	}
	return Format(quakes, s.minMag, s.days, now), nil
}
