package swpc

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Kind registers the space weather source.
var Kind = &sources.Kind{
	Name:        "swpc",
	Title:       "NOAA space weather",
	Description: "Solar wind speed and planetary Kp index",
	API:         "services.swpc.noaa.gov",
	New: func(env sources.Env, _ sources.Params) (sources.Source, error) {
		return &Source{
			client: NewClient(env),
			now:    env.Clock(),
		}, nil
	},
}

// Source renders solar wind and Kp lines.
type Source struct {
	client *Client
	now    func() time.Time
}

// Kind implements sources.Source.
func (s *Source) Kind() string { return Kind.Name }

// Render implements sources.Source. It fails only when both products fail.
func (s *Source) Render(ctx context.Context) (string, error) {
	plasma, perr := s.client.SolarWind(ctx)
	kp, kerr := s.client.Kp(ctx)
	if perr != nil && kerr != nil {
		return "", errors.Join(perr, kerr)
	}
	return render.Updated(s.now()) + "\n\n" + SolarWindLine(plasma, perr) + "\n\n" + KpLine(kp, kerr), nil
}
