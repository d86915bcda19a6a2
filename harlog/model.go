package harlog

import (
	"errors"

	"github.com/pb33f/harhar"
)

// ErrMissingEntries is returned when a HAR document has no "log" object or
// its "log" object has no "entries" list. Anything else that is missing is
// optional and degrades instead of failing.
var ErrMissingEntries = errors.New("har document is missing required log.entries")

// Document is the in-memory form of one captured HAR trace. The entry list
// reuses the harhar wire model; pages use a local type because the analysis
// needs navigation-timing extension fields the HAR 1.2 page shape omits.
type Document struct {
	// FilePath is the path the document was loaded from, empty when parsed
	// from a plain reader.
	FilePath string

	// Version of the HAR log.
	Version string

	// Creator of the capture, when recorded.
	Creator *harhar.Creator

	// Browser that produced the capture, when recorded.
	Browser *harhar.Creator

	// Pages contains page groupings with their load timings. May be empty,
	// the analysis degrades without it.
	Pages []Page

	// Entries contains every request/response exchange, in capture order.
	Entries []harhar.Entry

	strings internTable
}

// Page represents a group of requests loaded by a single page navigation.
//
// W3C Spec: https://w3c.github.io/web-performance/specs/HAR/Overview.html
type Page struct {
	// Start of the page load (ISO 8601)
	Start string `json:"startedDateTime"`

	// ID used to reference this page grouping (Entry.PageRef)
	ID string `json:"id"`

	// Title of the page. Browser exporters usually put the page URL here.
	Title string `json:"title"`

	// PageTimings contains the page-level load timing offsets.
	PageTimings PageTimings `json:"pageTimings"`

	// NavTimings carries Navigation Timing API marks some capture tools
	// attach to each page as millisecond epoch timestamps. Not part of the
	// HAR 1.2 spec, hence the underscore key.
	NavTimings NavigationTimings `json:"_timings,omitempty"`

	// Comment can be added by the user
	Comment string `json:"comment,omitempty"`
}

// PageTimings contains DOM-related page timing information, in milliseconds
// relative to Page.Start. Negative values mean the timing does not apply.
type PageTimings struct {
	// OnContentLoad is when the page content finished loading.
	OnContentLoad float64 `json:"onContentLoad,omitempty"`

	// OnLoad is when the onLoad event fired.
	OnLoad float64 `json:"onLoad,omitempty"`

	// FirstContentfulPaint is a common exporter extension marking the first
	// rendered content, in milliseconds from navigation start.
	FirstContentfulPaint float64 `json:"_firstContentfulPaint,omitempty"`

	// Comment can be added by the user
	Comment string `json:"comment,omitempty"`
}

// NavigationTimings holds absolute Navigation Timing marks, each a
// millisecond epoch timestamp. Zero means the mark was not captured.
type NavigationTimings struct {
	NavigationStart          float64 `json:"navigationStart,omitempty"`
	DOMContentLoadedEventEnd float64 `json:"domContentLoadedEventEnd,omitempty"`
	LoadEventEnd             float64 `json:"loadEventEnd,omitempty"`
}

// FirstEntryURL returns the URL of the first captured entry, or the empty
// string when the document holds no entries.
func (d *Document) FirstEntryURL() string {
	if len(d.Entries) == 0 {
		return ""
	}
	return d.Entries[0].Request.URL
}
