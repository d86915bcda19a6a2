package lens

import "fmt"

const (
	// maxReasonableRequests is the request-count ceiling before the page is
	// considered too chatty.
	maxReasonableRequests = 80

	// meanDurationThresholdMS flags a high average request time.
	meanDurationThresholdMS = 300.0

	// fcpThresholdMS is the "good" ceiling for first-contentful-paint.
	fcpThresholdMS = 1800.0
)

// Finding is one rule-triggered diagnostic: what fired, a description
// embedding the triggering value, and a fixed remediation suggestion.
type Finding struct {
	Category    string
	Description string
	Remediation string
}

// bottleneckRule evaluates one summary field against its threshold. fire
// returns a rendered finding and whether the rule triggered.
type bottleneckRule struct {
	fire func(Summary) (Finding, bool)
}

var bottleneckRules = []bottleneckRule{
	{fire: func(s Summary) (Finding, bool) {
		if s.SlowRequests <= 0 {
			return Finding{}, false
		}
		return Finding{
			Category: "Too many slow resources",
			Description: fmt.Sprintf("%d resources took longer than %.0fms to load, dragging down overall page speed",
				s.SlowRequests, slowRequestThresholdMS),
			Remediation: "1. Compress image assets; 2. Code-split and lazy-load JS/CSS bundles; " +
				"3. Serve static resources through a CDN; 4. Reduce server response time",
		}, true
	}},
	{fire: func(s Summary) (Finding, bool) {
		if s.TotalRequests <= maxReasonableRequests {
			return Finding{}, false
		}
		return Finding{
			Category: "Too many requests",
			Description: fmt.Sprintf("the page issued %d requests, above the reasonable ceiling of %d, adding network overhead",
				s.TotalRequests, maxReasonableRequests),
			Remediation: "1. Bundle JS/CSS files; 2. Combine small images into sprites; " +
				"3. Trim third-party dependencies and import on demand",
		}, true
	}},
	{fire: func(s Summary) (Finding, bool) {
		if s.ErrorRequests <= 0 {
			return Finding{}, false
		}
		return Finding{
			Category: "Error requests present",
			Description: fmt.Sprintf("%d requests failed with 4xx/5xx responses, which may break functionality or drop resources",
				s.ErrorRequests),
			Remediation: "1. Verify resource URLs; 2. Check upstream service health; " +
				"3. Fix 4xx (missing resources) and 5xx (server errors)",
		}, true
	}},
	{fire: func(s Summary) (Finding, bool) {
		if s.MeanTotalMS <= meanDurationThresholdMS {
			return Finding{}, false
		}
		return Finding{
			Category: "Average latency too high",
			Description: fmt.Sprintf("the mean request time is %.2fms, above the reasonable threshold of %.0fms",
				s.MeanTotalMS, meanDurationThresholdMS),
			Remediation: "1. Optimize database queries with indexes; 2. Add server-side caching; " +
				"3. Increase server bandwidth; 4. Adopt HTTP/2",
		}, true
	}},
	{fire: func(s Summary) (Finding, bool) {
		// an uncaptured FCP never triggers, it is not coerced to a number
		if !s.PageTiming.FCPCaptured || s.PageTiming.FCPMS <= fcpThresholdMS {
			return Finding{}, false
		}
		return Finding{
			Category: "First contentful paint too slow",
			Description: fmt.Sprintf("FCP took %.2fms, above the good-experience ceiling of %.0fms, hurting perceived load speed",
				s.PageTiming.FCPMS, fcpThresholdMS),
			Remediation: "1. Inline critical above-the-fold CSS; 2. Preload core HTML/JS; " +
				"3. Defer non-essential first-screen resources; 4. Speed up server responses",
		}, true
	}},
}

// noBottleneckFinding is emitted when no rule fires.
var noBottleneckFinding = Finding{
	Category:    "No significant bottleneck",
	Description: "all metrics within acceptable range",
	Remediation: "1. Keep monitoring resource loading; 2. Periodically remove redundant assets; " +
		"3. Track emerging protocol optimizations such as HTTP/3",
}

// Detect evaluates each bottleneck rule independently against the summary,
// in fixed order. Multiple rules can fire in one run; when none fire the
// single no-bottleneck finding is returned.
func Detect(summary Summary) []Finding {
	findings := make([]Finding, 0, len(bottleneckRules))

	for _, rule := range bottleneckRules {
		if finding, fired := rule.fire(summary); fired {
			findings = append(findings, finding)
		}
	}

	if len(findings) == 0 {
		findings = append(findings, noBottleneckFinding)
	}

	return findings
}
