package charts

import (
	"math"
	"strconv"
	"time"

	"github.com/matzehuels/readmefeed/pkg/render"
)

// SquareWave samples the first harmonics odd terms of the square wave
// Fourier series, (4/π) Σ sin((2k-1)(x+phase))/(2k-1), at n points over one
// period.
func SquareWave(harmonics, n int, phase float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := 2*math.Pi*float64(i)/float64(n) + phase
		var y float64
		for k := 1; k <= harmonics; k++ {
			m := float64(2*k - 1)
			y += math.Sin(m*x) / m
		}
		out[i] = 4 / math.Pi * y
	}
	return out
}

// WaveChart renders samples as a line chart.
func WaveChart(samples []float64, harmonics int) (string, error) {
	labels := make([]string, len(samples))
	data := make([]float64, len(samples))
	for i, v := range samples {
		labels[i] = strconv.Itoa(i)
		data[i] = render.Round(v, 3)
	}
	return render.QuickChart(render.Chart{
		Type: "line",
		Data: render.ChartData{
			Labels: labels,
			Datasets: []render.Dataset{{
				Label:       strconv.Itoa(harmonics) + " harmonics",
				Data:        data,
				BorderColor: "#16a085",
				BorderWidth: 2,
				PointRadius: 0,
			}},
		},
		Options: map[string]any{
			"scales": map[string]any{"xAxes": []any{map[string]any{"display": false}}},
		},
	}, 680, 240)
}

// phaseAt maps the UTC hour of day onto one period.
func phaseAt(now time.Time) float64 {
	return 2 * math.Pi * float64(now.UTC().Hour()) / 24
}
