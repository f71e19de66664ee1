package charts

import (
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
)

// Classic Lorenz parameters.
const (
	Sigma = 10.0
	Rho   = 28.0
	Beta  = 8.0 / 3.0
)

// Vec3 is a point in Lorenz phase space.
type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) add(b Vec3) Vec3       { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) scale(k float64) Vec3 { return Vec3{a.X * k, a.Y * k, a.Z * k} }

// Derivative evaluates the Lorenz system at p.
func Derivative(p Vec3) Vec3 {
	return Vec3{
		X: Sigma * (p.Y - p.X),
		Y: p.X*(Rho-p.Z) - p.Y,
		Z: p.X*p.Y - Beta*p.Z,
	}
}

// Step advances p by dt with one RK4 step.
func Step(p Vec3, dt float64) Vec3 {
	k1 := Derivative(p)
	k2 := Derivative(p.add(k1.scale(dt / 2)))
	k3 := Derivative(p.add(k2.scale(dt / 2)))
	k4 := Derivative(p.add(k3.scale(dt)))
	sum := k1.add(k2.scale(2)).add(k3.scale(2)).add(k4)
	return p.add(sum.scale(dt / 6))
}

// Trajectory integrates steps RK4 steps from start and returns every
// every-th point, start included.
func Trajectory(start Vec3, dt float64, steps, every int) []Vec3 {
	every = max(every, 1)
	out := make([]Vec3, 0, steps/every+1)
	p := start
	for i := 0; i <= steps; i++ {
		if i%every == 0 {
			out = append(out, p)
		}
		p = Step(p, dt)
	}
	return out
}

// LorenzChart renders the x/z projection of a trajectory.
func LorenzChart(points []Vec3) (string, error) {
	data := make([]render.Point, len(points))
	for i, p := range points {
		data[i] = render.Point{X: render.Round(p.X, 2), Y: render.Round(p.Z, 2)}
	}
	return render.QuickChart(render.Chart{
		Type: "scatter",
		Data: render.ChartData{Datasets: []render.Dataset{{
			Data:        data,
			ShowLine:    true,
			BorderColor: "#8e44ad",
			BorderWidth: 1,
			PointRadius: 0,
		}}},
		Options: map[string]any{
			"legend": map[string]any{"display": false},
			"scales": map[string]any{
				"xAxes": []any{map[string]any{"display": false}},
				"yAxes": []any{map[string]any{"display": false}},
			},
		},
	}, 680, 400)
}

// lorenzStart derives a start point from the date so each day draws a
// slightly different trajectory.
func lorenzStart(now time.Time) Vec3 {
	return Vec3{X: 1 + float64(now.UTC().YearDay())/1000, Y: 1, Z: 1}
}
