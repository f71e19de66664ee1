package arxiv

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/matzehuels/readmefeed/pkg/render"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultBaseURL is the arXiv export API query endpoint.
const DefaultBaseURL = "https://export.arxiv.org/api/query"

// RequestInterval is the minimum spacing arXiv asks API clients to keep
// between requests.
const RequestInterval = 3 * time.Second

// DefaultCategories are queried when no categories are configured.
var DefaultCategories = []string{"cs.AI", "cs.LG", "physics.geo-ph"}

// Paper is one arXiv submission.
type Paper struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Authors   []string  `json:"authors,omitempty"`
	Category  string    `json:"category,omitempty"`
	Published time.Time `json:"published"`
}

// Client fetches papers from the arXiv export API.
type Client struct {
	*sources.Client
	baseURL string
}

// NewClient creates an arXiv client from the run environment.
func NewClient(env sources.Env) *Client {
	c := env.Client("arxiv", nil).WithRate(rate.Every(RequestInterval), 1)
	return &Client{Client: c, baseURL: DefaultBaseURL}
}

// Latest returns up to limit papers in the given categories, newest first.
func (c *Client) Latest(ctx context.Context, categories []string, limit int) ([]Paper, error) {
	query := Query(categories, limit)
	var papers []Paper
	err := c.Cached(ctx, query, false, &papers, func() error {
		var feed atomFeed
		if err := c.GetXML(ctx, c.baseURL+"?"+query, &feed); err != nil {
			return err
		}
		papers = feed.papers()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(papers) == 0 {
		return nil, sources.Errorf("arXiv returned no entries")
	}
	return papers, nil
}

// Query builds the raw query string. Category terms are joined with +OR+,
// which arXiv reads as a boolean OR; the plus signs must stay unescaped.
func Query(categories []string, limit int) string {
	terms := make([]string, len(categories))
	for i, cat := range categories {
		terms[i] = "cat:" + url.QueryEscape(cat)
	}
	return fmt.Sprintf("search_query=%s&sortBy=submittedDate&sortOrder=descending&max_results=%d",
		strings.Join(terms, "+OR+"), limit)
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string `xml:"id"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
	Links     []struct {
		Href string `xml:"href,attr"`
		Rel  string `xml:"rel,attr"`
		Type string `xml:"type,attr"`
	} `xml:"link"`
	Authors []struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Categories []struct {
		Term string `xml:"term,attr"`
	} `xml:"category"`
}

func (f atomFeed) papers() []Paper {
	papers := make([]Paper, 0, len(f.Entries))
	for _, e := range f.Entries {
		p := Paper{
			ID:    strings.TrimSpace(e.ID),
			Title: render.CollapseSpace(e.Title),
			Link:  e.link(),
		}
		for _, a := range e.Authors {
			if name := strings.TrimSpace(a.Name); name != "" {
				p.Authors = append(p.Authors, name)
			}
		}
		if len(e.Categories) > 0 {
			p.Category = e.Categories[0].Term
		}
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Published)); err == nil {
			p.Published = t
		}
		papers = append(papers, p)
	}
	return papers
}

// link prefers the alternate HTML link and falls back to the entry id,
// which is the abstract URL.
func (e atomEntry) link() string {
	for _, l := range e.Links {
		if l.Rel == "alternate" || (l.Rel == "" && l.Type == "text/html") {
			return l.Href
		}
	}
	return strings.TrimSpace(e.ID)
}
