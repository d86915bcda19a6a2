package lens

import (
	"testing"
	"time"

	"github.com/pb33f/harhar"

	"github.com/harlens/harlens/harlog"
)

func navPage(navStart, domReady, load, fcp float64) harlog.Page {
	return harlog.Page{
		ID:    "page_1",
		Title: "https://example.com/",
		PageTimings: harlog.PageTimings{
			FirstContentfulPaint: fcp,
		},
		NavTimings: harlog.NavigationTimings{
			NavigationStart:          navStart,
			DOMContentLoadedEventEnd: domReady,
			LoadEventEnd:             load,
		},
	}
}

func TestExtractPageTiming_FullShape(t *testing.T) {
	navStart := float64(1700000000000)
	page := navPage(navStart, navStart+850.5, navStart+2100, 920.25)

	pt := ExtractPageTiming([]harlog.Page{page}, nil)

	if !pt.HasNavigation {
		t.Fatal("expected full navigation shape")
	}
	if pt.URL != "https://example.com/" {
		t.Errorf("unexpected page URL %q", pt.URL)
	}
	if want := time.UnixMilli(1700000000000); !pt.NavigationStart.Equal(want) {
		t.Errorf("navigation start = %v, want %v", pt.NavigationStart, want)
	}
	if pt.DOMReadyMS != 850.5 {
		t.Errorf("DOM ready = %v, want 850.5", pt.DOMReadyMS)
	}
	if pt.FullLoadMS != 2100 {
		t.Errorf("full load = %v, want 2100", pt.FullLoadMS)
	}
	if !pt.FCPCaptured || pt.FCPMS != 920.25 {
		t.Errorf("FCP = %v (captured=%v), want 920.25 captured", pt.FCPMS, pt.FCPCaptured)
	}
	if pt.FirstScreenMS != 1220.25 {
		t.Errorf("first screen = %v, want FCP+300 = 1220.25", pt.FirstScreenMS)
	}
}

func TestExtractPageTiming_ZeroNavigationStart(t *testing.T) {
	page := navPage(0, 1700000000850, 1700000002100, 0)

	pt := ExtractPageTiming([]harlog.Page{page}, nil)

	if !pt.HasNavigation {
		t.Fatal("expected full navigation shape")
	}
	if !pt.NavigationStart.IsZero() {
		t.Errorf("expected zero navigation start, got %v", pt.NavigationStart)
	}
	if pt.DOMReadyMS != 0 || pt.FullLoadMS != 0 {
		t.Errorf("offsets without navigation start should be 0, got dom=%v load=%v",
			pt.DOMReadyMS, pt.FullLoadMS)
	}
	if pt.FCPCaptured {
		t.Error("zero FCP should not be captured")
	}
}

func TestExtractPageTiming_NegativeOffsetsClamped(t *testing.T) {
	navStart := float64(1700000000000)
	// event marks before navigation start can appear in malformed captures
	page := navPage(navStart, navStart-500, navStart-10, 0)

	pt := ExtractPageTiming([]harlog.Page{page}, nil)

	if pt.DOMReadyMS != 0 || pt.FullLoadMS != 0 {
		t.Errorf("negative offsets must clamp to 0, got dom=%v load=%v", pt.DOMReadyMS, pt.FullLoadMS)
	}
}

func TestExtractPageTiming_DegradedShape(t *testing.T) {
	entries := []harhar.Entry{makeEntry("https://example.com/landing", 200, 10)}

	pt := ExtractPageTiming(nil, entries)

	if pt.HasNavigation {
		t.Error("expected degraded shape without page data")
	}
	if pt.URL != "https://example.com/landing" {
		t.Errorf("degraded shape should carry the first entry URL, got %q", pt.URL)
	}
	if pt.FCPCaptured {
		t.Error("degraded shape has no FCP")
	}
}

func TestExtractPageTiming_MinimalShape(t *testing.T) {
	pt := ExtractPageTiming(nil, nil)

	if pt.HasNavigation || pt.URL != "" || pt.FCPCaptured {
		t.Errorf("expected minimal empty shape, got %+v", pt)
	}
}

func TestExtractPageTiming_PageURLFallsBackToFirstEntry(t *testing.T) {
	page := navPage(0, 0, 0, 0)
	page.Title = ""
	entries := []harhar.Entry{makeEntry("https://fallback.example.com/", 200, 10)}

	pt := ExtractPageTiming([]harlog.Page{page}, entries)

	if pt.URL != "https://fallback.example.com/" {
		t.Errorf("expected first entry URL fallback, got %q", pt.URL)
	}
}
