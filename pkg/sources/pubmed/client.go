package pubmed

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultBaseURL is the E-utilities root.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// Article is one PubMed record summary.
type Article struct {
	UID         string `json:"uid"`
	Title       string `json:"title"`
	Journal     string `json:"journal"`
	PubDate     string `json:"pub_date"`
	FirstAuthor string `json:"first_author,omitempty"`
}

// URL returns the article's PubMed page.
func (a Article) URL() string {
	return "https://pubmed.ncbi.nlm.nih.gov/" + a.UID + "/"
}

// Client provides access to PubMed via E-utilities.
type Client struct {
	*sources.Client
	baseURL string
	apiKey  string
}

// NewClient creates a PubMed client from the run environment. The NCBI key
// is optional and only raises the rate limit.
func NewClient(env sources.Env) *Client {
	return &Client{
		Client:  env.Client("pubmed", nil),
		baseURL: DefaultBaseURL,
		apiKey:  env.Settings().Keys.NCBI,
	}
}

func (c *Client) query(v url.Values) string {
	v.Set("db", "pubmed")
	v.Set("retmode", "json")
	if c.apiKey != "" {
		v.Set("api_key", c.apiKey)
	}
	return v.Encode()
}

// Newest returns up to n of the most recently published articles matching
// term.
func (c *Client) Newest(ctx context.Context, term string, n int) ([]Article, error) {
	var articles []Article
	err := c.Cached(ctx, term+":"+strconv.Itoa(n), false, &articles, func() error {
		ids, err := c.search(ctx, term, n)
		if err != nil || len(ids) == 0 {
			articles = nil
			return err
		}
		articles, err = c.summaries(ctx, ids)
		return err
	})
	return articles, err
}

func (c *Client) search(ctx context.Context, term string, n int) ([]string, error) {
	q := c.query(url.Values{
		"term":   {term},
		"retmax": {strconv.Itoa(n)},
		"sort":   {"pub_date"},
	})
	var resp struct {
		Result struct {
			IDs []string `json:"idlist"`
		} `json:"esearchresult"`
	}
	if err := c.Get(ctx, c.baseURL+"/esearch.fcgi?"+q, &resp); err != nil {
		return nil, err
	}
	return resp.Result.IDs, nil
}

func (c *Client) summaries(ctx context.Context, ids []string) ([]Article, error) {
	q := c.query(url.Values{"id": {strings.Join(ids, ",")}})
	var resp struct {
		Result map[string]json.RawMessage `json:"result"`
	}
	if err := c.Get(ctx, c.baseURL+"/esummary.fcgi?"+q, &resp); err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(ids))
	for _, id := range ids {
		raw, ok := resp.Result[id]
		if !ok {
			continue
		}
		var doc struct {
			UID             string `json:"uid"`
			Title           string `json:"title"`
			FullJournalName string `json:"fulljournalname"`
			Source          string `json:"source"`
			PubDate         string `json:"pubdate"`
			SortFirstAuthor string `json:"sortfirstauthor"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		journal := doc.FullJournalName
		if journal == "" {
			journal = doc.Source
		}
		articles = append(articles, Article{
			UID:         id,
			Title:       strings.TrimSuffix(strings.TrimSpace(doc.Title), "."),
			Journal:     journal,
			PubDate:     doc.PubDate,
			FirstAuthor: doc.SortFirstAuthor,
		})
	}
	return articles, nil
}
