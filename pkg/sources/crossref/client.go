package crossref

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultBaseURL is the Crossref API root.
const DefaultBaseURL = "https://api.crossref.org"

// Work is one registered work.
type Work struct {
	DOI   string `json:"doi"`
	Title string `json:"title"`
	Venue string `json:"venue,omitempty"`
	Year  int    `json:"year,omitempty"`
}

// URL returns the DOI resolver link.
func (w Work) URL() string {
	return "https://doi.org/" + w.DOI
}

// Client provides access to the Crossref works API.
type Client struct {
	*sources.Client
	baseURL string
}

// NewClient creates a Crossref client from the run environment.
func NewClient(env sources.Env) *Client {
	return &Client{Client: env.Client("crossref", nil), baseURL: DefaultBaseURL}
}

// Newest returns up to n of the most recently published works for query.
func (c *Client) Newest(ctx context.Context, query string, n int) ([]Work, error) {
	q := url.Values{
		"query":  {query},
		"rows":   {strconv.Itoa(n)},
		"sort":   {"published"},
		"order":  {"desc"},
		"select": {"DOI,title,container-title,issued"},
	}

	var works []Work
	err := c.Cached(ctx, query+":"+strconv.Itoa(n), false, &works, func() error {
		var resp worksResponse
		if err := c.Get(ctx, c.baseURL+"/works?"+q.Encode(), &resp); err != nil {
			return err
		}
		if resp.Status != "ok" {
			return sources.Errorf("crossref: status %q", resp.Status)
		}
		works = resp.works()
		return nil
	})
	return works, err
}

type worksResponse struct {
	Status  string `json:"status"`
	Message struct {
		Items []struct {
			DOI            string   `json:"DOI"`
			Title          []string `json:"title"`
			ContainerTitle []string `json:"container-title"`
			Issued         struct {
				DateParts [][]*int `json:"date-parts"`
			} `json:"issued"`
		} `json:"items"`
	} `json:"message"`
}

func (r worksResponse) works() []Work {
	out := make([]Work, 0, len(r.Message.Items))
	for _, it := range r.Message.Items {
		w := Work{DOI: it.DOI}
		if len(it.Title) > 0 {
			w.Title = strings.TrimSpace(it.Title[0])
		}
		if w.Title == "" {
			w.Title = it.DOI
		}
		if len(it.ContainerTitle) > 0 {
			w.Venue = it.ContainerTitle[0]
		}
		if dp := it.Issued.DateParts; len(dp) > 0 && len(dp[0]) > 0 && dp[0][0] != nil {
			w.Year = *dp[0][0]
		}
		out = append(out, w)
	}
	return out
}
