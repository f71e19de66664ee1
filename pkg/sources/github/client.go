package github

import (
	"context"
	"net/url"
	"strconv"

	"github.com/matzehuels/readmefeed/pkg/sources"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// Repo is one search hit.
type Repo struct {
	FullName    string `json:"full_name"`
	URL         string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Language    string `json:"language"`
	Archived    bool   `json:"archived"`
}

// Client provides access to the GitHub search API with optional
// authentication.
type Client struct {
	*sources.Client
	baseURL string
}

// NewClient creates a GitHub client from the run environment. The configured
// token, if any, authenticates the requests.
func NewClient(env sources.Env) *Client {
	token := env.Settings().Keys.GitHub
	return &Client{Client: env.Client("github", Headers(token)), baseURL: DefaultBaseURL}
}

// Headers returns the request headers for the GitHub API.
func Headers(token string) map[string]string {
	headers := map[string]string{
		"Accept":               "application/vnd.github+json",
		"X-GitHub-Api-Version": "2022-11-28",
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}

// Search returns up to n repositories matching query, ordered by sort.
func (c *Client) Search(ctx context.Context, query, sort string, n int) ([]Repo, error) {
	q := url.Values{
		"q":        {query},
		"sort":     {sort},
		"order":    {"desc"},
		"per_page": {strconv.Itoa(n)},
	}

	var repos []Repo
	err := c.Cached(ctx, "search:"+q.Encode(), false, &repos, func() error {
		var resp struct {
			Items []Repo `json:"items"`
		}
		if err := c.Get(ctx, c.baseURL+"/search/repositories?"+q.Encode(), &resp); err != nil {
			return err
		}
		repos = resp.Items
		return nil
	})
	return repos, err
}
