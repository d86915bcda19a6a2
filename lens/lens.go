// Package lens is the analysis core: it turns a loaded HAR document into
// per-request metric records, a page timing snapshot, aggregate summary
// statistics and a list of bottleneck findings. Everything in this package
// is pure computation; the only fallible steps of a run (loading the trace,
// writing the report) live in harlog and report.
package lens

import "github.com/harlens/harlens/harlog"

// Report bundles the four result sets of one analysis run. Each run owns
// its report exclusively; nothing is shared or reused across runs.
type Report struct {
	// Source is the path of the analyzed trace, when known.
	Source string

	Records    []Record
	PageTiming PageTiming
	Summary    Summary
	Findings   []Finding
}

// Analyze runs the full pipeline over a loaded document. It cannot fail:
// partial or malformed optional data degrades per field instead.
func Analyze(doc *harlog.Document) *Report {
	records := ExtractAll(doc.Entries)
	pageTiming := ExtractPageTiming(doc.Pages, doc.Entries)
	summary := Summarize(records, pageTiming)

	return &Report{
		Source:     doc.FilePath,
		Records:    records,
		PageTiming: pageTiming,
		Summary:    summary,
		Findings:   Detect(summary),
	}
}
