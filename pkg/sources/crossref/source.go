package crossref

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Kind registers the Crossref source.
var Kind = &sources.Kind{
	Name:        "crossref",
	Title:       "Crossref",
	Description: "Newest scholarly works for a query",
	API:         "api.crossref.org",
	New: func(env sources.Env, p sources.Params) (sources.Source, error) {
		rows, err := p.Bounded("rows", 5, 1, 100)
		if err != nil {
			return nil, err
		}
		return &Source{
			client: NewClient(env),
			now:    env.Clock(),
			query:  p.String("query", "seismology"),
			rows:   rows,
		}, nil
	},
}

// Source renders the newest works for a query.
type Source struct {
	client *Client
	now    func() time.Time
	query  string
	rows   int
}

// Kind implements sources.Source.
func (s *Source) Kind() string { return Kind.Name }

// Render implements sources.Source.
func (s *Source) Render(ctx context.Context) (string, error) {
	works, err := s.client.Newest(ctx, s.query, s.rows)
	if err != nil {
		return "", err
	}
	return Format(works, s.query, s.now()), nil
}
