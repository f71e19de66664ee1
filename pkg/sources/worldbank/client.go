package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultBaseURL is the World Bank API root.
const DefaultBaseURL = "https://api.worldbank.org/v2"

// Point is one yearly observation.
type Point struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Series is an indicator time series for one country, oldest first.
type Series struct {
	Indicator string  `json:"indicator"`
	Country   string  `json:"country"`
	Points    []Point `json:"points"`
}

// Client provides access to the World Bank indicators API.
type Client struct {
	*sources.Client
	baseURL string
}

// NewClient creates a World Bank client from the run environment.
func NewClient(env sources.Env) *Client {
	return &Client{Client: env.Client("worldbank", nil), baseURL: DefaultBaseURL}
}

// Indicator returns the series for indicator in country between the years
// from and to inclusive. Years without a value are skipped.
func (c *Client) Indicator(ctx context.Context, country, indicator string, from, to int) (*Series, error) {
	q := url.Values{
		"format":   {"json"},
		"date":     {fmt.Sprintf("%d:%d", from, to)},
		"per_page": {"200"},
	}
	endpoint := fmt.Sprintf("%s/country/%s/indicator/%s?%s",
		c.baseURL, url.PathEscape(country), url.PathEscape(indicator), q.Encode())
	key := fmt.Sprintf("%s:%s:%d-%d", country, indicator, from, to)

	var s Series
	err := c.Cached(ctx, key, false, &s, func() error {
		var pages []json.RawMessage
		if err := c.Get(ctx, endpoint, &pages); err != nil {
			return err
		}
		parsed, err := parse(pages)
		if err != nil {
			return err
		}
		s = *parsed
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(s.Points) == 0 {
		return nil, sources.Errorf("worldbank: no values for %s in %s", indicator, country)
	}
	return &s, nil
}

type observation struct {
	Indicator struct {
		Value string `json:"value"`
	} `json:"indicator"`
	Country struct {
		Value string `json:"value"`
	} `json:"country"`
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// parse decodes the [meta, data] pair the API returns. Errors come back as
// a single-element array holding a message.
func parse(pages []json.RawMessage) (*Series, error) {
	if len(pages) < 2 {
		var meta []struct {
			Message []struct {
				Value string `json:"value"`
			} `json:"message"`
		}
		if len(pages) == 1 {
			_ = json.Unmarshal(pages[0], &meta)
		}
		if len(meta) > 0 && len(meta[0].Message) > 0 {
			return nil, sources.Errorf("worldbank: %s", meta[0].Message[0].Value)
		}
		return nil, sources.Errorf("worldbank: unexpected response")
	}

	var obs []observation
	if err := json.Unmarshal(pages[1], &obs); err != nil {
		return nil, fmt.Errorf("decode observations: %w", err)
	}

	s := &Series{}
	for _, o := range obs {
		if s.Indicator == "" {
			s.Indicator, s.Country = o.Indicator.Value, o.Country.Value
		}
		year, err := strconv.Atoi(o.Date)
		if err != nil || o.Value == nil {
			continue
		}
		s.Points = append(s.Points, Point{Year: year, Value: *o.Value})
	}
	sort.Slice(s.Points, func(i, j int) bool { return s.Points[i].Year < s.Points[j].Year })
	return s, nil
}
