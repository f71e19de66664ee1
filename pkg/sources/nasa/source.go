package nasa

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// APODKind registers the Astronomy Picture of the Day source.
var APODKind = &sources.Kind{
	Name:        "apod",
	Title:       "NASA APOD",
	Description: "Astronomy Picture of the Day with explanation",
	API:         "api.nasa.gov",
	New: func(env sources.Env, p sources.Params) (sources.Source, error) {
		width, err := p.Bounded("width", 680, 0, 4096)
		if err != nil {
			return nil, err
		}
		return &APOD{client: NewClient(env), now: env.Clock(), width: width}, nil
	},
}

// NEOKind registers the near-Earth object source.
var NEOKind = &sources.Kind{
	Name:        "neo",
	Title:       "NASA NEO",
	Description: "Today's closest asteroid approaches",
	API:         "api.nasa.gov",
	New: func(env sources.Env, p sources.Params) (sources.Source, error) {
		rows, err := p.Bounded("rows", 5, 1, 50)
		if err != nil {
			return nil, err
		}
		return &NEO{client: NewClient(env), now: env.Clock(), rows: rows}, nil
	},
}

// APOD renders the Astronomy Picture of the Day.
type APOD struct {
	client *Client
	now    func() time.Time
	width  int
}

// Kind implements sources.Source.
func (s *APOD) Kind() string { return APODKind.Name }

// Render implements sources.Source.
func (s *APOD) Render(ctx context.Context) (string, error) {
	pic, err := s.client.APOD(ctx, s.now())
	if err != nil {
		return "", err
	}
	return FormatPicture(pic, s.width), nil
}

// NEO renders today's closest near-Earth object approaches.
type NEO struct {
	client *Client
	now    func() time.Time
	rows   int
}

// Kind implements sources.Source.
func (s *NEO) Kind() string { return NEOKind.Name }

// Render implements sources.Source.
func (s *NEO) Render(ctx context.Context) (string, error) {
	now := s.now()
	approaches, err := s.client.Approaches(ctx, now)
	if err != nil {
		return "", err
	}
	return FormatApproaches(approaches, s.rows, now), nil
}
