// Package timestamp provides the "last updated" source.
package timestamp

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

// Kind registers the timestamp source. The optional `format` parameter is a
// Go time layout; the default renders "**2006-01-02 15:04 UTC**".
var Kind = &sources.Kind{
	Name:        "timestamp",
	Title:       "Timestamp",
	Description: "Bold UTC time of the run",
	New: func(env sources.Env, p sources.Params) (sources.Source, error) {
		return &Source{now: env.Clock(), layout: p.String("format", "")}, nil
	},
}

// Source renders the current time.
type Source struct {
	now    func() time.Time
	layout string
}

// Kind implements sources.Source.
func (s *Source) Kind() string { return Kind.Name }

// Render implements sources.Source.
func (s *Source) Render(context.Context) (string, error) {
	t := s.now().UTC()
	if s.layout != "" {
		return t.Format(s.layout), nil
	}
	return "**" + render.Stamp(t) + "**", nil
}
