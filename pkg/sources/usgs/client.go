package usgs

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultBaseURL is the FDSN event query endpoint.
const DefaultBaseURL = "https://earthquake.usgs.gov/fdsnws/event/1/query"

// Quake is one earthquake event.
type Quake struct {
	Magnitude    float64   `json:"magnitude"`
	HasMagnitude bool      `json:"has_magnitude"`
	Place        string    `json:"place"`
	DepthKM      float64   `json:"depth_km"`
	HasDepth     bool      `json:"has_depth"`
	Time         time.Time `json:"time"`
	URL          string    `json:"url"`
}

// Query selects events.
type Query struct {
	Since        time.Time
	MinMagnitude float64
	Limit        int
}

// Client provides access to the USGS event service.
type Client struct {
	*sources.Client
	baseURL string
}

// NewClient creates a USGS client from the run environment.
func NewClient(env sources.Env) *Client {
	return &Client{Client: env.Client("usgs", nil), baseURL: DefaultBaseURL}
}

// Strongest returns the strongest events matching q, strongest first.
func (c *Client) Strongest(ctx context.Context, q Query) ([]Quake, error) {
	params := url.Values{
		"format":       {"geojson"},
		"starttime":    {q.Since.UTC().Format("2006-01-02T15:04:05")},
		"minmagnitude": {strconv.FormatFloat(q.MinMagnitude, 'f', -1, 64)},
		"orderby":      {"magnitude"},
		"limit":        {strconv.Itoa(q.Limit)},
	}
	// The start time is truncated to the hour so cache keys stay stable
	// across runs a few minutes apart.
	key := fmt.Sprintf("%s:%s:%d", q.Since.UTC().Truncate(time.Hour).Format(time.RFC3339), params.Get("minmagnitude"), q.Limit)

	var quakes []Quake
	err := c.Cached(ctx, key, false, &quakes, func() error {
		var data featureCollection
		if err := c.Get(ctx, c.baseURL+"?"+params.Encode(), &data); err != nil {
			return err
		}
		quakes = data.quakes()
		return nil
	})
	return quakes, err
}

type featureCollection struct {
	Features []struct {
		Properties struct {
			Mag   *float64 `json:"mag"`
			Place *string  `json:"place"`
			Time  int64    `json:"time"`
			URL   string   `json:"url"`
		} `json:"properties"`
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func (fc featureCollection) quakes() []Quake {
	out := make([]Quake, 0, len(fc.Features))
	for _, f := range fc.Features {
		p := f.Properties
		q := Quake{
			Time: time.UnixMilli(p.Time).UTC(),
			URL:  p.URL,
		}
		if p.Mag != nil {
			q.Magnitude, q.HasMagnitude = *p.Mag, true
		}
		if p.Place != nil {
			q.Place = *p.Place
		}
		if c := f.Geometry.Coordinates; len(c) > 2 {
			q.DepthKM, q.HasDepth = c[2], true
		}
		out = append(out, q)
	}
	return out
}
