package nasa

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/matzehuels/readmefeed/pkg/config"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultBaseURL is the NASA open API root.
const DefaultBaseURL = "https://api.nasa.gov"

// dateLayout is the date format used by both APIs.
const dateLayout = "2006-01-02"

// Picture is one Astronomy Picture of the Day.
type Picture struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Explanation string `json:"explanation"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
}

// IsImage reports whether the picture can be embedded with <img>.
func (p Picture) IsImage() bool {
	return (p.MediaType == "" || p.MediaType == "image") && p.URL != ""
}

// Approach is one near-Earth object close approach.
type Approach struct {
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	DiameterMin float64 `json:"diameter_min"`
	DiameterMax float64 `json:"diameter_max"`
	MissKM      float64 `json:"miss_km"`
	SpeedKMS    float64 `json:"speed_kms"`
	Hazardous   bool    `json:"hazardous"`
	HasApproach bool    `json:"has_approach"`
}

// Client provides access to the NASA APOD and NeoWs APIs.
type Client struct {
	*sources.Client
	baseURL string
	apiKey  string
}

// NewClient creates a NASA client from the run environment. An empty
// configured key falls back to DEMO_KEY.
func NewClient(env sources.Env) *Client {
	apiKey := env.Settings().Keys.NASA
	if apiKey == "" {
		apiKey = config.DefaultNASAKey
	}
	return &Client{Client: env.Client("nasa", nil), baseURL: DefaultBaseURL, apiKey: apiKey}
}

// APOD returns the picture of the day for date (UTC).
func (c *Client) APOD(ctx context.Context, date time.Time) (*Picture, error) {
	day := date.UTC().Format(dateLayout)
	q := url.Values{"api_key": {c.apiKey}}

	var pic Picture
	err := c.Cached(ctx, "apod:"+day, false, &pic, func() error {
		return c.Get(ctx, c.baseURL+"/planetary/apod?"+q.Encode(), &pic)
	})
	if err != nil {
		return nil, err
	}
	if pic.Title == "" && pic.URL == "" {
		return nil, sources.Errorf("APOD response is empty")
	}
	return &pic, nil
}

// Approaches returns the close approaches listed for date (UTC), in feed
// order.
func (c *Client) Approaches(ctx context.Context, date time.Time) ([]Approach, error) {
	day := date.UTC().Format(dateLayout)
	q := url.Values{
		"start_date": {day},
		"end_date":   {day},
		"api_key":    {c.apiKey},
	}

	var out []Approach
	err := c.Cached(ctx, "neo:"+day, false, &out, func() error {
		var feed neoFeed
		if err := c.Get(ctx, c.baseURL+"/neo/rest/v1/feed?"+q.Encode(), &feed); err != nil {
			return err
		}
		out = feed.approaches(day)
		return nil
	})
	return out, err
}

type neoFeed struct {
	NearEarthObjects map[string][]struct {
		Name              string `json:"name"`
		JPLURL            string `json:"nasa_jpl_url"`
		Hazardous         bool   `json:"is_potentially_hazardous_asteroid"`
		EstimatedDiameter struct {
			Meters struct {
				Min float64 `json:"estimated_diameter_min"`
				Max float64 `json:"estimated_diameter_max"`
			} `json:"meters"`
		} `json:"estimated_diameter"`
		CloseApproachData []struct {
			MissDistance struct {
				Kilometers string `json:"kilometers"`
			} `json:"miss_distance"`
			RelativeVelocity struct {
				KilometersPerSecond string `json:"kilometers_per_second"`
			} `json:"relative_velocity"`
		} `json:"close_approach_data"`
	} `json:"near_earth_objects"`
}

func (f neoFeed) approaches(day string) []Approach {
	objs := f.NearEarthObjects[day]
	out := make([]Approach, 0, len(objs))
	for _, o := range objs {
		a := Approach{
			Name:        o.Name,
			URL:         o.JPLURL,
			DiameterMin: o.EstimatedDiameter.Meters.Min,
			DiameterMax: o.EstimatedDiameter.Meters.Max,
			Hazardous:   o.Hazardous,
		}
		if len(o.CloseApproachData) > 0 {
			ca := o.CloseApproachData[0]
			miss, err := strconv.ParseFloat(ca.MissDistance.Kilometers, 64)
			a.HasApproach = err == nil
			a.MissKM = miss
			a.SpeedKMS, _ = strconv.ParseFloat(ca.RelativeVelocity.KilometersPerSecond, 64)
		}
		out = append(out, a)
	}
	return out
}
