package swpc

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultBaseURL is the SWPC products root.
const DefaultBaseURL = "https://services.swpc.noaa.gov/products"

// ErrNoData is returned when a product parses but holds no usable reading.
var ErrNoData = errors.New("no usable reading")

// Plasma is the latest solar wind reading.
type Plasma struct {
	Time    string  `json:"time"`
	Density float64 `json:"density"`
	Speed   float64 `json:"speed"`
}

// Client provides access to SWPC JSON products.
type Client struct {
	*sources.Client
	baseURL string
}

// NewClient creates an SWPC client from the run environment.
func NewClient(env sources.Env) *Client {
	return &Client{Client: env.Client("swpc", nil), baseURL: DefaultBaseURL}
}

// SolarWind returns the most recent complete plasma reading.
func (c *Client) SolarWind(ctx context.Context) (*Plasma, error) {
	var p Plasma
	err := c.Cached(ctx, "plasma", false, &p, func() error {
		rows, err := c.table(ctx, "/solar-wind/plasma-2-hour.json")
		if err != nil {
			return err
		}
		for i := len(rows) - 1; i >= 0; i-- {
			density, derr := number(rows[i].get(1, "density"))
			speed, serr := number(rows[i].get(2, "speed"))
			if derr == nil && serr == nil {
				t, _ := rows[i].get(0, "time_tag").(string)
				p = Plasma{Time: t, Density: density, Speed: speed}
				return nil
			}
		}
		return ErrNoData
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Kp returns the most recent planetary K index.
func (c *Client) Kp(ctx context.Context) (float64, error) {
	var kp float64
	err := c.Cached(ctx, "kp", false, &kp, func() error {
		rows, err := c.table(ctx, "/noaa-planetary-k-index.json")
		if err != nil {
			return err
		}
		for i := len(rows) - 1; i >= 0; i-- {
			v := rows[i].get(1, "Kp")
			if v == nil {
				v = rows[i].get(1, "kp_index")
			}
			if f, err := number(v); err == nil {
				kp = f
				return nil
			}
		}
		return ErrNoData
	})
	return kp, err
}

// row is one data row. SWPC serves most products as an array of arrays with
// a header row; some newer ones are arrays of objects. Both are accepted.
type row struct {
	cells  []any
	fields map[string]any
}

func (r row) get(i int, key string) any {
	if r.fields != nil {
		return r.fields[key]
	}
	if i < len(r.cells) {
		return r.cells[i]
	}
	return nil
}

func (c *Client) table(ctx context.Context, path string) ([]row, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, c.baseURL+path, &raw); err != nil {
		return nil, err
	}

	var arrays [][]any
	if err := json.Unmarshal(raw, &arrays); err == nil {
		if len(arrays) < 2 {
			return nil, ErrNoData
		}
		rows := make([]row, 0, len(arrays)-1)
		for _, cells := range arrays[1:] {
			rows = append(rows, row{cells: cells})
		}
		return rows, nil
	}

	var objects []map[string]any
	if err := json.Unmarshal(raw, &objects); err != nil {
		return nil, errors.Join(ErrNoData, err)
	}
	rows := make([]row, 0, len(objects))
	for _, o := range objects {
		rows = append(rows, row{fields: o})
	}
	return rows, nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, ErrNoData
	}
}
