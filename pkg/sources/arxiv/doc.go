// Package arxiv renders the latest arXiv submissions.
//
// # Overview
//
// Papers come from the arXiv export API (https://export.arxiv.org/api/query),
// an Atom feed that needs no key. The source has two views over the same
// query:
//
//   - ticker: every paper as a link inside a scrolling <marquee>
//   - table: the newest five as a Title, Authors, Cat table
//
// The default README uses both, so the fetched feed is memoized for the run
// and the second region costs no request.
//
// # Parameters
//
//	view        ticker | table (default table)
//	categories  comma separated, default cs.AI,cs.LG,physics.geo-ph
//	max         papers to fetch, 1-100 (default 8)
//	rows        table rows (default 5)
//
// # Authors
//
// Author names are shortened to the part before the first comma and at most
// two are listed; longer lists end in "et al.".
package arxiv
