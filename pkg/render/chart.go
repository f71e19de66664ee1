package render

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// QuickChartURL is the chart rendering endpoint.
const QuickChartURL = "https://quickchart.io/chart"

// Chart is the subset of a Chart.js configuration used by the chart sources.
type Chart struct {
	Type    string         `json:"type"`
	Data    ChartData      `json:"data"`
	Options map[string]any `json:"options,omitempty"`
}

// ChartData holds labels and datasets.
type ChartData struct {
	Labels   []string  `json:"labels,omitempty"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one series. Data holds either []float64 for category charts or
// []Point for scatter charts.
type Dataset struct {
	Label       string  `json:"label,omitempty"`
	Data        any     `json:"data"`
	Fill        bool    `json:"fill"`
	ShowLine    bool    `json:"showLine,omitempty"`
	BorderColor string  `json:"borderColor,omitempty"`
	BorderWidth float64 `json:"borderWidth,omitempty"`
	PointRadius float64 `json:"pointRadius"`
}

// Point is an x/y pair in a scatter dataset.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// QuickChart returns an image URL for chart at the given pixel size.
func QuickChart(chart Chart, width, height int) (string, error) {
	cfg, err := json.Marshal(chart)
	if err != nil {
		return "", fmt.Errorf("encode chart: %w", err)
	}
	q := url.Values{}
	q.Set("c", string(cfg))
	q.Set("w", fmt.Sprint(width))
	q.Set("h", fmt.Sprint(height))
	q.Set("bkg", "white")
	return QuickChartURL + "?" + q.Encode(), nil
}
