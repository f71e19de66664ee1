// Package builtin assembles the registry of every source kind shipped with
// readmefeed.
package builtin

import (
	"github.com/matzehuels/readmefeed/pkg/sources"
	"github.com/matzehuels/readmefeed/pkg/sources/arxiv"
	"github.com/matzehuels/readmefeed/pkg/sources/charts"
	"github.com/matzehuels/readmefeed/pkg/sources/crossref"
	"github.com/matzehuels/readmefeed/pkg/sources/github"
	"github.com/matzehuels/readmefeed/pkg/sources/iss"
	"github.com/matzehuels/readmefeed/pkg/sources/nasa"
	"github.com/matzehuels/readmefeed/pkg/sources/pubmed"
	"github.com/matzehuels/readmefeed/pkg/sources/swpc"
	"github.com/matzehuels/readmefeed/pkg/sources/timestamp"
	"github.com/matzehuels/readmefeed/pkg/sources/usgs"
	"github.com/matzehuels/readmefeed/pkg/sources/worldbank"
)

// All lists the built-in kinds.
var All = []*sources.Kind{
	timestamp.Kind,
	arxiv.Kind,
	nasa.APODKind,
	nasa.NEOKind,
	usgs.Kind,
	swpc.Kind,
	worldbank.Kind,
	pubmed.Kind,
	iss.Kind,
	crossref.Kind,
	github.Kind,
	charts.LorenzKind,
	charts.WaveKind,
}

// Registry returns a fresh registry holding [All].
func Registry() *sources.Registry {
	return sources.NewRegistry(All...)
}
