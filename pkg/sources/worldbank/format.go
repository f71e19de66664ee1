package worldbank

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/readmefeed/pkg/render"
)

// FormatValue renders an indicator value: grouped integers for large
// magnitudes, two decimals otherwise.
func FormatValue(v float64) string {
	if math.Abs(v) >= 1000 {
		return render.Thousands(v)
	}
	return fmt.Sprintf("%.2f", v)
}

// Chart returns the trend chart image URL for s.
func Chart(s *Series) (string, error) {
	labels := make([]string, len(s.Points))
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		labels[i] = strconv.Itoa(p.Year)
		values[i] = p.Value
	}
	return render.QuickChart(render.Chart{
		Type: "line",
		Data: render.ChartData{
			Labels: labels,
			Datasets: []render.Dataset{{
				Label:       s.Indicator,
				Data:        values,
				BorderColor: "#2f6fb0",
				BorderWidth: 2,
				PointRadius: 2,
			}},
		},
		Options: map[string]any{"legend": map[string]any{"display": false}},
	}, 680, 300)
}

// Format renders the latest rows values, newest first, and the chart.
func Format(s *Series, rows int) (string, error) {
	chart, err := Chart(s)
	if err != nil {
		return "", err
	}
	t := render.NewTable("Year", "Value")
	for i := len(s.Points) - 1; i >= 0 && t.Len() < rows; i-- {
		p := s.Points[i]
		t.Row(strconv.Itoa(p.Year), FormatValue(p.Value))
	}
	head := fmt.Sprintf("**%s** — %s", s.Indicator, s.Country)
	return head + "\n\n" + t.String() + "\n\n" + render.Img(chart, s.Indicator, 680), nil
}
