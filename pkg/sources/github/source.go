package github

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/errors"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Kind registers the GitHub repository search source.
var Kind = &sources.Kind{
	Name:        "github",
	Title:       "GitHub search",
	Description: "Top repositories for a search query",
	API:         "api.github.com",
	New:         newSource,
}

// Source renders the top repositories for a query.
type Source struct {
	client *Client
	now    func() time.Time
	query  string
	sort   string
	rows   int
}

func newSource(env sources.Env, p sources.Params) (sources.Source, error) {
	rows, err := p.Bounded("rows", 5, 1, 100)
	if err != nil {
		return nil, err
	}
	sort := p.String("sort", "stars")
	switch sort {
	case "stars", "forks", "updated":
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "github: unknown sort %q", sort)
	}
	return &Source{
		client: NewClient(env),
		now:    env.Clock(),
		query:  p.String("query", "topic:seismology"),
		sort:   sort,
		rows:   rows,
	}, nil
}

// Kind implements sources.Source.
func (s *Source) Kind() string { return Kind.Name }

// Render implements sources.Source.
func (s *Source) Render(ctx context.Context) (string, error) {
	repos, err := s.client.Search(ctx, s.query, s.sort, s.rows)
	if err != nil {
		return "", err
	}
	return Format(repos, s.query, s.now()), nil
}
