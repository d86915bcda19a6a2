package lens

import (
	"fmt"
	"sort"
	"strings"
)

const (
	topSlowCount       = 3
	topSlowURLTailSize = 50
)

// LabelCount is one bucket of a distribution, in first-seen order.
type LabelCount struct {
	Label string
	Count int
}

// Summary is the fixed set of aggregate statistics reduced from one run's
// records and page timing snapshot. No hidden state: identical inputs
// produce identical summaries.
type Summary struct {
	TotalRequests int
	SlowRequests  int
	ErrorRequests int

	// MeanTotalMS is the mean total duration across all records, 0 when
	// there are none.
	MeanTotalMS float64

	// Page-level metrics carried over from the snapshot.
	PageTiming PageTiming

	// Categories and Domains count records per resource category and per
	// domain, ordered by first appearance in the trace.
	Categories []LabelCount
	Domains    []LabelCount

	// TopSlow holds the URLs of the three largest total durations, query
	// strings stripped and truncated to their last characters.
	TopSlow []string
}

// Summarize reduces the record list and page snapshot into a Summary. Safe
// on an empty record list: counts and the mean are 0.
func Summarize(records []Record, pageTiming PageTiming) Summary {
	summary := Summary{
		TotalRequests: len(records),
		PageTiming:    pageTiming,
	}

	var totalMS float64
	for _, r := range records {
		totalMS += r.TotalMS
		if r.Slow {
			summary.SlowRequests++
		}
		if r.Error {
			summary.ErrorRequests++
		}
	}
	if len(records) > 0 {
		summary.MeanTotalMS = round2(totalMS / float64(len(records)))
	}

	summary.Categories = countByLabel(records, func(r Record) string { return string(r.Category) })
	summary.Domains = countByLabel(records, func(r Record) string { return r.Domain })
	summary.TopSlow = topSlowURLs(records)

	return summary
}

// CategoryDistribution renders the category counts as a "label: N" join,
// or "no data" when the run had no records.
func (s Summary) CategoryDistribution() string {
	return renderDistribution(s.Categories)
}

// DomainDistribution renders the domain counts as a "label: N" join, or
// "no data" when the run had no records.
func (s Summary) DomainDistribution() string {
	return renderDistribution(s.Domains)
}

// TopSlowJoined renders the top-slow URL list as one display string.
func (s Summary) TopSlowJoined() string {
	if len(s.TopSlow) == 0 {
		return "no data"
	}
	return strings.Join(s.TopSlow, "; ")
}

func countByLabel(records []Record, label func(Record) string) []LabelCount {
	counts := make([]LabelCount, 0, 8)
	position := make(map[string]int, 8)

	for _, r := range records {
		l := label(r)
		if idx, seen := position[l]; seen {
			counts[idx].Count++
			continue
		}
		position[l] = len(counts)
		counts = append(counts, LabelCount{Label: l, Count: 1})
	}

	return counts
}

func renderDistribution(counts []LabelCount) string {
	if len(counts) == 0 {
		return "no data"
	}

	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s: %d", c.Label, c.Count)
	}
	return strings.Join(parts, "; ")
}

// topSlowURLs selects the records with the greatest total duration, ties
// broken by original sequence order, and renders each URL with the query
// string stripped and only the trailing characters kept.
func topSlowURLs(records []Record) []string {
	ranked := make([]Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalMS > ranked[j].TotalMS
	})

	limit := topSlowCount
	if len(ranked) < limit {
		limit = len(ranked)
	}

	urls := make([]string, 0, limit)
	for _, r := range ranked[:limit] {
		urls = append(urls, truncateURL(r.URL))
	}
	return urls
}

func truncateURL(url string) string {
	if idx := strings.Index(url, "?"); idx >= 0 {
		url = url[:idx]
	}
	if len(url) > topSlowURLTailSize {
		url = url[len(url)-topSlowURLTailSize:]
	}
	return url
}
