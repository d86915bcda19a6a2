package lens

import (
	"testing"

	"github.com/pb33f/harhar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harlens/harlens/harlog"
)

func TestAnalyze_FullPipeline(t *testing.T) {
	navStart := float64(1700000000000)
	doc := &harlog.Document{
		FilePath: "recording.har",
		Pages: []harlog.Page{{
			ID:    "page_1",
			Title: "https://shop.example.com/",
			PageTimings: harlog.PageTimings{
				FirstContentfulPaint: 2100,
			},
			NavTimings: harlog.NavigationTimings{
				NavigationStart:          navStart,
				DOMContentLoadedEventEnd: navStart + 1200,
				LoadEventEnd:             navStart + 3400,
			},
		}},
		Entries: []harhar.Entry{
			makeEntry("https://shop.example.com/", 200, 750),
			makeEntry("https://cdn.example.com/app.js", 200, 320),
			makeEntry("https://api.example.com/cart.json", 503, 90),
		},
	}

	result := Analyze(doc)

	require.Len(t, result.Records, 3)
	assert.Equal(t, "recording.har", result.Source)

	assert.Equal(t, 3, result.Summary.TotalRequests)
	assert.Equal(t, 1, result.Summary.SlowRequests)
	assert.Equal(t, 1, result.Summary.ErrorRequests)
	assert.InDelta(t, 386.67, result.Summary.MeanTotalMS, 0.001)

	require.True(t, result.PageTiming.HasNavigation)
	assert.Equal(t, 1200.0, result.PageTiming.DOMReadyMS)
	assert.Equal(t, 3400.0, result.PageTiming.FullLoadMS)
	assert.True(t, result.PageTiming.FCPCaptured)
	assert.Equal(t, 2400.0, result.PageTiming.FirstScreenMS)

	// slow resource, error request, high mean and slow FCP all fire
	categories := make([]string, 0, len(result.Findings))
	for _, f := range result.Findings {
		categories = append(categories, f.Category)
	}
	assert.Equal(t, []string{
		"Too many slow resources",
		"Error requests present",
		"Average latency too high",
		"First contentful paint too slow",
	}, categories)
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	result := Analyze(&harlog.Document{Entries: []harhar.Entry{}})

	require.NotNil(t, result)
	assert.Empty(t, result.Records)
	assert.False(t, result.PageTiming.HasNavigation)
	assert.Equal(t, 0, result.Summary.TotalRequests)
	assert.Equal(t, 0.0, result.Summary.MeanTotalMS)

	require.Len(t, result.Findings, 1)
	assert.Equal(t, "No significant bottleneck", result.Findings[0].Category)
}
