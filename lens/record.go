package lens

import (
	"math"
	"strings"

	"github.com/pb33f/harhar"
)

const (
	// slowRequestThresholdMS marks a request as slow when its total time
	// exceeds this value.
	slowRequestThresholdMS = 500.0

	// errorStatusFloor is the lowest status code treated as an error.
	errorStatusFloor = 400
)

// Record is the canonical per-request metric row derived from one trace
// entry. Computed once per analysis run and never mutated afterwards.
type Record struct {
	// Sequence is the 1-based position of the entry in the original trace.
	Sequence int

	URL      string
	Domain   string
	Category ResourceCategory
	Method   string
	Status   int

	// Phase durations in milliseconds, rounded to two decimals. Sentinel or
	// negative values in the trace become 0.
	TotalMS   float64
	DNSMS     float64
	ConnectMS float64
	SSLMS     float64
	SendMS    float64
	WaitMS    float64
	ReceiveMS float64

	// SizeKB is the transferred size (response headers + body) in kilobytes,
	// 0 when the byte counts are absent or non-positive.
	SizeKB float64

	// Slow is true when TotalMS exceeds the slow-request threshold.
	Slow bool

	// Error is true when the response status is 4xx or 5xx.
	Error bool
}

// ExtractAll derives one Record per entry, preserving trace order. It never
// fails: an empty entry list yields an empty record list, and entries with
// missing or sentinel fields yield zeroed metric fields.
func ExtractAll(entries []harhar.Entry) []Record {
	records := make([]Record, 0, len(entries))

	for i, entry := range entries {
		url := entry.Request.URL
		total := clampDuration(entry.Time)

		records = append(records, Record{
			Sequence:  i + 1,
			URL:       url,
			Domain:    extractDomain(url),
			Category:  Classify(url, entry.Response.Body.MIMEType),
			Method:    entry.Request.Method,
			Status:    entry.Response.StatusCode,
			TotalMS:   round2(total),
			DNSMS:     round2(clampDuration(entry.Timings.DNS)),
			ConnectMS: round2(clampDuration(entry.Timings.Connect)),
			SSLMS:     round2(clampDuration(entry.Timings.SSL)),
			SendMS:    round2(clampDuration(entry.Timings.Send)),
			WaitMS:    round2(clampDuration(entry.Timings.Wait)),
			ReceiveMS: round2(clampDuration(entry.Timings.Receive)),
			SizeKB:    transferredKB(entry.Response.HeadersSize, entry.Response.BodySize),
			Slow:      total > slowRequestThresholdMS,
			Error:     entry.Response.StatusCode >= errorStatusFloor,
		})
	}

	return records
}

// extractDomain pulls the host component out of a URL by splitting on the
// first scheme separator. Malformed URLs never fail, they map to "unknown".
func extractDomain(url string) string {
	idx := strings.Index(url, "//")
	if idx < 0 {
		return "unknown"
	}

	host := url[idx+2:]
	if slash := strings.Index(host, "/"); slash >= 0 {
		host = host[:slash]
	}
	if host == "" {
		return "unknown"
	}
	return host
}

// clampDuration resolves the HAR -1 "not applicable" sentinel and any other
// negative duration to 0.
func clampDuration(ms float64) float64 {
	if ms < 0 {
		return 0
	}
	return ms
}

func transferredKB(headersSize, bodySize int) float64 {
	total := headersSize + bodySize
	if total <= 0 {
		return 0
	}
	return round2(float64(total) / 1024)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
