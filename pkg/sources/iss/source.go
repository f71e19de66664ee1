package iss

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Kind registers the ISS source.
var Kind = &sources.Kind{
	Name:        "iss",
	Title:       "ISS tracker",
	Description: "Current ISS position and people in space",
	API:         "api.open-notify.org",
	New: func(env sources.Env, _ sources.Params) (sources.Source, error) {
		return &Source{
			client: NewClient(env),
			now:    env.Clock(),
		}, nil
	},
}

// Source renders the ISS position and crew.
type Source struct {
	client *Client
	now    func() time.Time
}

// Kind implements sources.Source.
func (s *Source) Kind() string { return Kind.Name }

// Render implements sources.Source.
func (s *Source) Render(ctx context.Context) (string, error) {
	pos, err := s.client.Position(ctx)
	if err != nil {
		return "", err
	}
	people, err := s.client.People(ctx)
	if err != nil {
		people = nil
	} else if people == nil {
		people = []Person{}
	}
	return Format(pos, people, s.now()), nil
}
