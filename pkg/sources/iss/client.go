package iss

import (
	"context"
	"strconv"
	"time"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultBaseURL is the Open Notify root. The service only speaks HTTP.
const DefaultBaseURL = "http://api.open-notify.org"

// Position is the station's ground track point.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Time      time.Time `json:"time"`
}

// Person is someone currently in space.
type Person struct {
	Name  string `json:"name"`
	Craft string `json:"craft"`
}

// Client provides access to Open Notify.
type Client struct {
	*sources.Client
	baseURL string
}

// NewClient creates an Open Notify client from the run environment.
func NewClient(env sources.Env) *Client {
	return &Client{Client: env.Client("iss", nil), baseURL: DefaultBaseURL}
}

// Position returns the current station position. It is never cached.
func (c *Client) Position(ctx context.Context) (*Position, error) {
	var resp struct {
		Message   string `json:"message"`
		Timestamp int64  `json:"timestamp"`
		Position  struct {
			Latitude  string `json:"latitude"`
			Longitude string `json:"longitude"`
		} `json:"iss_position"`
	}
	if err := c.Get(ctx, c.baseURL+"/iss-now.json", &resp); err != nil {
		return nil, err
	}
	if resp.Message != "success" {
		return nil, sources.Errorf("iss-now: %q", resp.Message)
	}
	lat, err := strconv.ParseFloat(resp.Position.Latitude, 64)
	if err != nil {
		return nil, sources.Errorf("iss-now: bad latitude %q", resp.Position.Latitude)
	}
	lon, err := strconv.ParseFloat(resp.Position.Longitude, 64)
	if err != nil {
		return nil, sources.Errorf("iss-now: bad longitude %q", resp.Position.Longitude)
	}
	return &Position{Latitude: lat, Longitude: lon, Time: time.Unix(resp.Timestamp, 0).UTC()}, nil
}

// People returns everyone currently in space.
func (c *Client) People(ctx context.Context) ([]Person, error) {
	var people []Person
	err := c.Cached(ctx, "astros", false, &people, func() error {
		var resp struct {
			Message string   `json:"message"`
			People  []Person `json:"people"`
		}
		if err := c.Get(ctx, c.baseURL+"/astros.json", &resp); err != nil {
			return err
		}
		if resp.Message != "success" {
			return sources.Errorf("astros: %q", resp.Message)
		}
		people = resp.People
		return nil
	})
	return people, err
}
