// Package io exports run reports as JSON, for CI artifacts and dashboards.
//
// # JSON Format
//
//	{
//	  "run_id": "2f0c…",
//	  "document": "README.md",
//	  "changed": true,
//	  "saved": true,
//	  "duration_ms": 1834,
//	  "regions": [
//	    {"name": "apod", "source": "apod", "outcome": "updated", "duration_ms": 412},
//	    {"name": "neo", "source": "neo", "outcome": "degraded", "error": "neo timed out", "duration_ms": 20000},
//	    {"name": "iss", "source": "iss", "outcome": "skipped", "duration_ms": 95}
//	  ]
//	}
//
// Use [ExportJSON] to write a report to a file or [WriteJSON] for any
// io.Writer. [ReadJSON] and [ImportJSON] read a report back and reject unknown
// outcomes.
package io
