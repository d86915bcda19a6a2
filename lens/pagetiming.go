package lens

import (
	"time"

	"github.com/pb33f/harhar"

	"github.com/harlens/harlens/harlog"
)

// firstScreenOffsetMS is the empirical gap added to first-contentful-paint
// to estimate when the first screen is usable. A heuristic constant, not a
// measured quantity.
const firstScreenOffsetMS = 300.0

// PageTiming is the page-level navigation snapshot for one analysis run.
// HasNavigation is false for the degraded shape, where only URL may be set
// (from the first entry); every other field then reads as unavailable.
type PageTiming struct {
	// URL of the analyzed page. Empty in the minimal no-data shape.
	URL string

	// HasNavigation is true only when page-level timing data was present.
	HasNavigation bool

	// NavigationStart is the wall-clock start of the navigation. Zero when
	// the capture did not record it.
	NavigationStart time.Time

	// DOMReadyMS and FullLoadMS are offsets from navigation start, never
	// negative, 0 when underivable.
	DOMReadyMS float64
	FullLoadMS float64

	// FCPMS is first-contentful-paint, valid only when FCPCaptured is true.
	FCPMS       float64
	FCPCaptured bool

	// FirstScreenMS estimates the first usable screen as FCP plus a fixed
	// offset. Valid only when FCPCaptured is true.
	FirstScreenMS float64
}

// ExtractPageTiming derives the navigation snapshot from the trace's page
// list. It always returns a usable snapshot: with no pages it degrades to
// the first entry's URL, and with no entries at all to the minimal empty
// shape. Offsets are computed against navigationStart only when that mark
// is positive, and are clamped at 0.
func ExtractPageTiming(pages []harlog.Page, entries []harhar.Entry) PageTiming {
	if len(pages) == 0 {
		return degradedPageTiming(entries)
	}

	page := pages[0]
	nav := page.NavTimings

	snapshot := PageTiming{
		URL:           pageURL(page, entries),
		HasNavigation: true,
	}

	if nav.NavigationStart > 0 {
		snapshot.NavigationStart = time.UnixMilli(int64(nav.NavigationStart))
		snapshot.DOMReadyMS = round2(clampDuration(nav.DOMContentLoadedEventEnd - nav.NavigationStart))
		snapshot.FullLoadMS = round2(clampDuration(nav.LoadEventEnd - nav.NavigationStart))
	}

	if fcp := page.PageTimings.FirstContentfulPaint; fcp > 0 {
		snapshot.FCPCaptured = true
		snapshot.FCPMS = round2(fcp)
		snapshot.FirstScreenMS = round2(fcp + firstScreenOffsetMS)
	}

	return snapshot
}

// degradedPageTiming is the reduced shape used when no page-level data can
// be read: URL from the first entry if one exists, everything else
// unavailable.
func degradedPageTiming(entries []harhar.Entry) PageTiming {
	if len(entries) == 0 {
		return PageTiming{}
	}
	return PageTiming{URL: entries[0].Request.URL}
}

// pageURL prefers the page title, which browser exporters populate with the
// page URL, and falls back to the first entry.
func pageURL(page harlog.Page, entries []harhar.Entry) string {
	if page.Title != "" {
		return page.Title
	}
	if len(entries) > 0 {
		return entries[0].Request.URL
	}
	return ""
}
