// Package github renders the top repositories for a GitHub search query.
//
// # Overview
//
// Results come from the repository search endpoint of the GitHub REST API
// (https://api.github.com/search/repositories). Unauthenticated search is
// limited to 10 requests per minute; with GITHUB_TOKEN set (Actions
// provides one) the limit is 30.
//
// # Parameters
//
//	query  search qualifiers (default "topic:seismology")
//	sort   stars | forks | updated (default stars)
//	rows   number of repositories (default 5)
//
// # Output
//
//	| Repository | ★ | Language | Description |
//	|------------|---|----------|-------------|
//	| [owner/repo](https://github.com/owner/repo) | 1,204 | Go | A tool |
package github
