package lens

import (
	"testing"

	"github.com/pb33f/harhar"
)

func makeEntry(url string, status int, totalMS float64) harhar.Entry {
	return harhar.Entry{
		Time: totalMS,
		Request: harhar.Request{
			Method: "GET",
			URL:    url,
		},
		Response: harhar.Response{
			StatusCode: status,
		},
	}
}

func TestExtractAll_SequenceInvariant(t *testing.T) {
	entries := []harhar.Entry{
		makeEntry("https://a.example.com/", 200, 100),
		makeEntry("https://b.example.com/x.js", 200, 250),
		makeEntry("https://c.example.com/y.css", 304, 40),
	}

	records := ExtractAll(entries)

	if len(records) != len(entries) {
		t.Fatalf("expected %d records, got %d", len(entries), len(records))
	}

	for i, rec := range records {
		if rec.Sequence != i+1 {
			t.Errorf("record %d has sequence %d, want %d", i, rec.Sequence, i+1)
		}
	}
}

func TestExtractAll_Empty(t *testing.T) {
	records := ExtractAll(nil)
	if len(records) != 0 {
		t.Errorf("expected no records for empty input, got %d", len(records))
	}
}

func TestExtractAll_SentinelTimingsBecomeZero(t *testing.T) {
	entry := makeEntry("https://example.com/", 200, 120)
	entry.Timings = harhar.Timings{
		DNS:     -1,
		Connect: -1,
		SSL:     -1,
		Send:    0.5,
		Wait:    80,
		Receive: -3.2,
	}

	rec := ExtractAll([]harhar.Entry{entry})[0]

	if rec.DNSMS != 0 || rec.ConnectMS != 0 || rec.SSLMS != 0 || rec.ReceiveMS != 0 {
		t.Errorf("sentinel timings should be 0, got dns=%v tcp=%v ssl=%v recv=%v",
			rec.DNSMS, rec.ConnectMS, rec.SSLMS, rec.ReceiveMS)
	}
	if rec.SendMS != 0.5 {
		t.Errorf("expected send time 0.5, got %v", rec.SendMS)
	}
	if rec.WaitMS != 80 {
		t.Errorf("expected wait time 80, got %v", rec.WaitMS)
	}
}

func TestExtractAll_NegativeTotalClamped(t *testing.T) {
	rec := ExtractAll([]harhar.Entry{makeEntry("https://example.com/", 200, -1)})[0]

	if rec.TotalMS != 0 {
		t.Errorf("expected total 0 for sentinel, got %v", rec.TotalMS)
	}
	if rec.Slow {
		t.Error("sentinel total must not mark a request slow")
	}
}

func TestExtractAll_RoundsToTwoDecimals(t *testing.T) {
	entry := makeEntry("https://example.com/", 200, 123.4567)
	entry.Timings.Wait = 99.999

	rec := ExtractAll([]harhar.Entry{entry})[0]

	if rec.TotalMS != 123.46 {
		t.Errorf("expected total 123.46, got %v", rec.TotalMS)
	}
	if rec.WaitMS != 100 {
		t.Errorf("expected wait 100, got %v", rec.WaitMS)
	}
}

func TestExtractAll_TransferredSize(t *testing.T) {
	entry := makeEntry("https://example.com/big.png", 200, 10)
	entry.Response.HeadersSize = 512
	entry.Response.BodySize = 2048

	rec := ExtractAll([]harhar.Entry{entry})[0]
	if rec.SizeKB != 2.5 {
		t.Errorf("expected 2.5 KB, got %v", rec.SizeKB)
	}

	empty := makeEntry("https://example.com/", 200, 10)
	empty.Response.HeadersSize = 0
	empty.Response.BodySize = -1 // har sentinel for unknown body size

	rec = ExtractAll([]harhar.Entry{empty})[0]
	if rec.SizeKB != 0 {
		t.Errorf("expected 0 KB for absent sizes, got %v", rec.SizeKB)
	}
}

func TestExtractAll_SlowFlag(t *testing.T) {
	rec := ExtractAll([]harhar.Entry{makeEntry("https://example.com/slow", 200, 600)})[0]

	if !rec.Slow {
		t.Error("600ms request should be flagged slow")
	}
	if rec.Error {
		t.Error("status 200 should not be flagged as error")
	}

	rec = ExtractAll([]harhar.Entry{makeEntry("https://example.com/fast", 200, 500)})[0]
	if rec.Slow {
		t.Error("500ms is at the threshold, not above it")
	}
}

func TestExtractAll_ErrorFlag(t *testing.T) {
	rec := ExtractAll([]harhar.Entry{makeEntry("https://example.com/missing", 404, 12)})[0]

	if !rec.Error {
		t.Error("status 404 should be flagged as error regardless of duration")
	}
	if rec.Slow {
		t.Error("12ms request should not be flagged slow")
	}

	rec = ExtractAll([]harhar.Entry{makeEntry("https://example.com/err", 500, 12)})[0]
	if !rec.Error {
		t.Error("status 500 should be flagged as error")
	}

	rec = ExtractAll([]harhar.Entry{makeEntry("https://example.com/redir", 399, 12)})[0]
	if rec.Error {
		t.Error("status 399 should not be flagged as error")
	}
}

func TestExtractAll_DomainExtraction(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://cdn.example.com/app.js", "cdn.example.com"},
		{"http://example.com", "example.com"},
		{"//shortcut.example.com/x", "shortcut.example.com"},
		{"relative/path/only", "unknown"},
		{"", "unknown"},
		{"https://", "unknown"},
	}

	for _, tc := range tests {
		rec := ExtractAll([]harhar.Entry{makeEntry(tc.url, 200, 1)})[0]
		if rec.Domain != tc.want {
			t.Errorf("domain of %q = %q, want %q", tc.url, rec.Domain, tc.want)
		}
	}
}

func TestExtractAll_MissingNestedFields(t *testing.T) {
	// a fully zero entry must still produce a usable record
	rec := ExtractAll([]harhar.Entry{{}})[0]

	if rec.Sequence != 1 {
		t.Errorf("expected sequence 1, got %d", rec.Sequence)
	}
	if rec.Domain != "unknown" {
		t.Errorf("expected unknown domain, got %q", rec.Domain)
	}
	if rec.Category != CategoryOther {
		t.Errorf("expected Other category, got %q", rec.Category)
	}
	if rec.TotalMS != 0 || rec.SizeKB != 0 {
		t.Errorf("expected zeroed metrics, got total=%v size=%v", rec.TotalMS, rec.SizeKB)
	}
	if rec.Slow || rec.Error {
		t.Error("zero entry should not be slow or an error")
	}
}
