package pubmed

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Kind registers the PubMed source.
var Kind = &sources.Kind{
	Name:        "pubmed",
	Title:       "PubMed",
	Description: "Newest PubMed articles for a search term",
	API:         "eutils.ncbi.nlm.nih.gov",
	New: func(env sources.Env, p sources.Params) (sources.Source, error) {
		rows, err := p.Bounded("rows", 5, 1, 50)
		if err != nil {
			return nil, err
		}
		return &Source{
			client: NewClient(env),
			now:  env.Clock(),
			term: p.String("term", "seismology"),
			rows: rows,
		}, nil
	},
}

// Source renders the newest articles for a term.
type Source struct {
	client *Client
	now    func() time.Time
	term   string
	rows   int
}

// Kind implements sources.Source.
func (s *Source) Kind() string { return Kind.Name }

// Render implements sources.Source.
func (s *Source) Render(ctx context.Context) (string, error) {
	articles, err := s.client.Newest(ctx, s.term, s.rows)
	if err != nil {
		return "", err
	}
	return Format(articles, s.term, s.now()), nil
}
