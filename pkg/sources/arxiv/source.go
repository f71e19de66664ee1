package arxiv

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/errors"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Views.
const (
	ViewTicker = "ticker"
	ViewTable  = "table"
)

// Kind registers the arXiv source.
var Kind = &sources.Kind{
	Name:        "arxiv",
	Title:       "arXiv",
	Description: "Latest arXiv submissions as a ticker or table",
	API:         "export.arxiv.org",
	New:         newSource,
}

// Source renders one view of the arXiv feed.
type Source struct {
	client     *Client
	memo       *sources.Memo
	now        func() time.Time
	view       string
	categories []string
	limit      int
	rows       int
}

func newSource(env sources.Env, p sources.Params) (sources.Source, error) {
	limit, err := p.Bounded("max", 8, 1, 100)
	if err != nil {
		return nil, err
	}
	rows, err := p.Bounded("rows", 5, 1, 100)
	if err != nil {
		return nil, err
	}
	view := p.String("view", ViewTable)
	if view != ViewTicker && view != ViewTable {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "arxiv: unknown view %q", view)
	}
	return &Source{
		client:     NewClient(env),
		memo:       env.Memo,
		now:        env.Clock(),
		view:       view,
		categories: p.List("categories", DefaultCategories),
		limit:      limit,
		rows:       rows,
	}, nil
}

// Kind implements sources.Source.
func (s *Source) Kind() string { return Kind.Name }

// Render implements sources.Source.
func (s *Source) Render(ctx context.Context) (string, error) {
	papers, err := sources.Memoize(s.memo, "arxiv:"+Query(s.categories, s.limit), func() ([]Paper, error) {
		return s.client.Latest(ctx, s.categories, s.limit)
	})
	if err != nil {
		return "", err
	}
	if s.view == ViewTicker {
		return Ticker(papers, s.now()), nil
	}
	return Table(papers, s.rows), nil
}
