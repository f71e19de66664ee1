package charts

import (
	"context"
	"time"

	"github.com/matzehuels/readmefeed/pkg/errors"
	"github.com/matzehuels/readmefeed/pkg/render"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

// LorenzKind registers the Lorenz attractor chart.
var LorenzKind = &sources.Kind{
	Name:        "lorenz",
	Title:       "Lorenz chart",
	Description: "Lorenz attractor x/z projection (offline)",
	New: func(env sources.Env, p sources.Params) (sources.Source, error) {
		steps, err := p.Bounded("steps", 4000, 100, 50000)
		if err != nil {
			return nil, err
		}
		dt, err := p.Float("dt", 0.01)
		if err != nil {
			return nil, err
		}
		if dt <= 0 || dt > 0.05 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "param dt: %g out of range (0, 0.05]", dt)
		}
		points, err := p.Bounded("points", 400, 10, 2000)
		if err != nil {
			return nil, err
		}
		return &Lorenz{now: env.Clock(), steps: steps, dt: dt, points: points}, nil
	},
}

// WaveKind registers the square wave chart.
var WaveKind = &sources.Kind{
	Name:        "wave",
	Title:       "Wave chart",
	Description: "Square wave Fourier synthesis (offline)",
	New: func(env sources.Env, p sources.Params) (sources.Source, error) {
		harmonics, err := p.Bounded("harmonics", 5, 1, 50)
		if err != nil {
			return nil, err
		}
		points, err := p.Bounded("points", 120, 8, 1000)
		if err != nil {
			return nil, err
		}
		return &Wave{now: env.Clock(), harmonics: harmonics, points: points}, nil
	},
}

// Lorenz renders a Lorenz attractor image.
type Lorenz struct {
	now    func() time.Time
	steps  int
	dt     float64
	points int
}

// Kind implements sources.Source.
func (s *Lorenz) Kind() string { return LorenzKind.Name }

// Render implements sources.Source.
func (s *Lorenz) Render(ctx context.Context) (string, error) {
	every := max(s.steps/s.points, 1)
	traj := Trajectory(lorenzStart(s.now()), s.dt, s.steps, every)
	chart, err := LorenzChart(traj)
	if err != nil {
		return "", err
	}
	return render.Img(chart, "Lorenz attractor", 680), nil
}

// Wave renders a square wave synthesis image.
type Wave struct {
	now       func() time.Time
	harmonics int
	points    int
}

// Kind implements sources.Source.
func (s *Wave) Kind() string { return WaveKind.Name }

// Render implements sources.Source.
func (s *Wave) Render(ctx context.Context) (string, error) {
	samples := SquareWave(s.harmonics, s.points, phaseAt(s.now()))
	chart, err := WaveChart(samples, s.harmonics)
	if err != nil {
		return "", err
	}
	return render.Img(chart, "Square wave synthesis", 680), nil
}
