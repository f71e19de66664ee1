// Package sources provides the shared machinery behind every feed that can
// fill a README region.
//
// # Overview
//
// A source fetches data from one public API (or computes it offline) and
// formats it as a markdown or HTML fragment. Each API lives in its own
// subpackage:
//
//   - [arxiv]: latest papers as a scrolling ticker or a table
//   - [nasa]: Astronomy Picture of the Day and near-Earth objects
//   - [usgs]: strongest earthquakes of the past week
//   - [swpc]: solar wind and planetary Kp index
//   - [worldbank]: development indicators with a trend chart
//   - [pubmed]: newest papers for a search term
//   - [iss]: position of the International Space Station
//   - [crossref]: newest works for a query
//   - [github]: top repositories for a search query
//   - [charts]: offline Lorenz attractor and wave charts
//   - [timestamp]: the time of the run
//
// # Contract
//
// A [Source] returns an error when it cannot produce content. The pipeline
// never sees that error as fatal: [Guard] bounds the call with a timeout,
// recovers panics, and swaps any failure for the region's fallback text or
// the standard [Unavailable] placeholder.
//
// # HTTP
//
// [Client] is embedded by every API client. It adds default headers, maps
// HTTP status codes to the sentinel errors in [cache], retries transient
// failures, rate limits requests and caches decoded responses under a
// per-source namespace.
//
// # Registry
//
// A [Kind] describes a source type and knows how to build it from an [Env]
// and the region's [Params]. The [builtin] subpackage assembles the
// [Registry] of every kind shipped with readmefeed.
package sources
