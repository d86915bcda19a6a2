// Package report renders an analysis report into tabular outputs and writes
// them to spreadsheet or CSV sinks. All display formatting lives here: the
// analysis core keeps booleans and numbers, this boundary turns them into
// yes/no labels, "unavailable" and "not captured" placeholders.
package report

import (
	"fmt"
	"strconv"

	"github.com/harlens/harlens/lens"
)

const (
	valueUnavailable = "unavailable"
	valueNotCaptured = "not captured"
	valueNone        = "none"

	timestampLayout = "2006-01-02 15:04:05"
)

// Table is one named tabular output with a fixed header.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// BuildTables renders the four report tables in their fixed order:
// requests, page timing, summary, bottlenecks.
func BuildTables(r *lens.Report) []Table {
	return []Table{
		RequestTable(r.Records),
		PageTimingTable(r.PageTiming),
		SummaryTable(r.Summary),
		FindingTable(r.Findings),
	}
}

// RequestTable renders the per-request metric records.
func RequestTable(records []lens.Record) Table {
	table := Table{
		Name: "Requests",
		Header: []string{
			"#", "URL", "Type", "Method", "Status", "Domain",
			"Total (ms)", "DNS (ms)", "TCP (ms)", "SSL (ms)",
			"Send (ms)", "Wait (ms)", "Receive (ms)", "Size (KB)",
			"Slow", "Error",
		},
		Rows: make([][]string, 0, len(records)),
	}

	for _, rec := range records {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(rec.Sequence),
			rec.URL,
			string(rec.Category),
			rec.Method,
			strconv.Itoa(rec.Status),
			rec.Domain,
			formatMS(rec.TotalMS),
			formatMS(rec.DNSMS),
			formatMS(rec.ConnectMS),
			formatMS(rec.SSLMS),
			formatMS(rec.SendMS),
			formatMS(rec.WaitMS),
			formatMS(rec.ReceiveMS),
			formatMS(rec.SizeKB),
			yesNo(rec.Slow),
			yesNo(rec.Error),
		})
	}

	return table
}

// PageTimingTable renders the single-row navigation snapshot.
func PageTimingTable(pt lens.PageTiming) Table {
	return Table{
		Name: "Page Timing",
		Header: []string{
			"Page URL", "Navigation Start", "DOM Ready (ms)",
			"Full Load (ms)", "FCP (ms)", "First Screen (ms)",
		},
		Rows: [][]string{{
			pageURLDisplay(pt),
			navigationStartDisplay(pt),
			offsetDisplay(pt, pt.DOMReadyMS),
			offsetDisplay(pt, pt.FullLoadMS),
			fcpDisplay(pt, pt.FCPMS),
			fcpDisplay(pt, pt.FirstScreenMS),
		}},
	}
}

// SummaryTable renders the aggregate statistics as metric/value pairs.
func SummaryTable(s lens.Summary) Table {
	return Table{
		Name:   "Summary",
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total requests", strconv.Itoa(s.TotalRequests)},
			{"Slow resources (>500ms)", strconv.Itoa(s.SlowRequests)},
			{"Error requests (4xx/5xx)", strconv.Itoa(s.ErrorRequests)},
			{"Mean request time (ms)", formatMS(s.MeanTotalMS)},
			{"Page full load (ms)", offsetDisplay(s.PageTiming, s.PageTiming.FullLoadMS)},
			{"DOM ready (ms)", offsetDisplay(s.PageTiming, s.PageTiming.DOMReadyMS)},
			{"First contentful paint (ms)", fcpDisplay(s.PageTiming, s.PageTiming.FCPMS)},
			{"Resource type distribution", s.CategoryDistribution()},
			{"Domain distribution", s.DomainDistribution()},
			{"Top 3 slowest resources", s.TopSlowJoined()},
		},
	}
}

// FindingTable renders the bottleneck findings.
func FindingTable(findings []lens.Finding) Table {
	table := Table{
		Name:   "Bottlenecks",
		Header: []string{"Bottleneck", "Description", "Remediation"},
		Rows:   make([][]string, 0, len(findings)),
	}

	for _, f := range findings {
		table.Rows = append(table.Rows, []string{f.Category, f.Description, f.Remediation})
	}

	return table
}

func formatMS(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func pageURLDisplay(pt lens.PageTiming) string {
	if pt.URL == "" {
		return fmt.Sprintf("%s (no entries in trace)", valueUnavailable)
	}
	return pt.URL
}

func navigationStartDisplay(pt lens.PageTiming) string {
	if !pt.HasNavigation {
		return valueUnavailable
	}
	if pt.NavigationStart.IsZero() {
		return valueNone
	}
	return pt.NavigationStart.Format(timestampLayout)
}

func offsetDisplay(pt lens.PageTiming, v float64) string {
	if !pt.HasNavigation {
		return valueUnavailable
	}
	return formatMS(v)
}

func fcpDisplay(pt lens.PageTiming, v float64) string {
	if !pt.HasNavigation {
		return valueUnavailable
	}
	if !pt.FCPCaptured {
		return valueNotCaptured
	}
	return formatMS(v)
}
