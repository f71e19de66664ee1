// Package pubmed lists the newest PubMed articles for a search term using
// the NCBI E-utilities (https://eutils.ncbi.nlm.nih.gov/entrez/eutils).
//
// Two calls are made: esearch for the newest ids, then esummary for their
// titles, journals and authors. An NCBI API key (NCBI_API_KEY) raises the
// rate limit from 3 to 10 requests per second but is optional.
//
// # Parameters
//
//	term  search term (default "seismology")
//	rows  number of articles (default 5)
package pubmed
