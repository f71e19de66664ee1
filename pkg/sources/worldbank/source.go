package worldbank

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Kind registers the World Bank indicator source.
var Kind = &sources.Kind{
	Name:        "worldbank",
	Title:       "World Bank data",
	Description: "Development indicator table and trend chart",
	API:         "api.worldbank.org",
	New:         newSource,
}

// Source renders one indicator series.
type Source struct {
	client    *Client
	now       func() time.Time
	country   string
	indicator string
	years     int
	rows      int
}

func newSource(env sources.Env, p sources.Params) (sources.Source, error) {
	years, err := p.Bounded("years", 10, 1, 100)
	if err != nil {
		return nil, err
	}
	rows, err := p.Bounded("rows", 5, 1, 100)
	if err != nil {
		return nil, err
	}
	return &Source{
		client:    NewClient(env),
		now:       env.Clock(),
		country:   p.String("country", "WLD"),
		indicator: p.String("indicator", "SP.POP.TOTL"),
		years:     years,
		rows:      rows,
	}, nil
}

// Kind implements sources.Source.
func (s *Source) Kind() string { return Kind.Name }

// Render implements sources.Source.
func (s *Source) Render(ctx context.Context) (string, error) {
	to := s.now().UTC().Year()
	series, err := s.client.Indicator(ctx, s.country, s.indicator, to-s.years, to)
	if err != nil {
		return "", err
	}
	return Format(series, s.rows)
}
