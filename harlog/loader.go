package harlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pb33f/harhar"
)

const (
	keyLog     = "log"
	keyVersion = "version"
	keyCreator = "creator"
	keyBrowser = "browser"
	keyPages   = "pages"
	keyEntries = "entries"
)

// Load reads and parses the HAR file at path. The only fatal shape problem
// is a missing log.entries list (ErrMissingEntries); everything optional is
// left zero-valued for the analysis to degrade over.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open har file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, err
	}
	doc.FilePath = path
	return doc, nil
}

// Parse decodes a HAR document from r using a token walk over the JSON so
// unknown or exporter-specific keys are skipped instead of rejected.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse har file: %w", err)
	}

	sawLog := false
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse har file: %w", err)
		}

		key, ok := token.(string)
		if !ok {
			continue
		}

		switch key {
		case keyLog:
			sawLog = true
			if err := doc.parseLog(decoder); err != nil {
				return nil, err
			}
		default:
			if err := skipValue(decoder); err != nil {
				return nil, fmt.Errorf("failed to parse har file: %w", err)
			}
		}
	}

	if !sawLog || doc.Entries == nil {
		return nil, ErrMissingEntries
	}

	return doc, nil
}

func (d *Document) parseLog(decoder *json.Decoder) error {
	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("failed to parse har log: %w", err)
	}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return fmt.Errorf("failed to parse har log: %w", err)
		}

		key, ok := token.(string)
		if !ok {
			continue
		}

		switch key {
		case keyVersion:
			if err := decoder.Decode(&d.Version); err != nil {
				return fmt.Errorf("failed to parse log version: %w", err)
			}
		case keyCreator:
			var creator harhar.Creator
			if err := decoder.Decode(&creator); err != nil {
				return fmt.Errorf("failed to parse log creator: %w", err)
			}
			d.Creator = &creator
		case keyBrowser:
			var browser harhar.Creator
			if err := decoder.Decode(&browser); err != nil {
				return fmt.Errorf("failed to parse log browser: %w", err)
			}
			d.Browser = &browser
		case keyPages:
			if err := decoder.Decode(&d.Pages); err != nil {
				return fmt.Errorf("failed to parse log pages: %w", err)
			}
		case keyEntries:
			if err := d.parseEntries(decoder); err != nil {
				return err
			}
		default:
			if err := skipValue(decoder); err != nil {
				return fmt.Errorf("failed to parse har log: %w", err)
			}
		}
	}

	// consume the log object's closing brace
	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("failed to parse har log: %w", err)
	}

	return nil
}

func (d *Document) parseEntries(decoder *json.Decoder) error {
	token, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("failed to parse log entries: %w", err)
	}
	if token != json.Delim('[') {
		return fmt.Errorf("expected entries array, got %v: %w", token, ErrMissingEntries)
	}

	d.Entries = make([]harhar.Entry, 0, 64)
	index := 0
	for decoder.More() {
		var entry harhar.Entry
		if err := decoder.Decode(&entry); err != nil {
			return fmt.Errorf("failed to parse entry %d: %w", index, err)
		}

		entry.Request.Method = d.strings.Intern(entry.Request.Method)
		entry.Response.StatusText = d.strings.Intern(entry.Response.StatusText)
		entry.Response.Body.MIMEType = d.strings.Intern(entry.Response.Body.MIMEType)
		entry.PageRef = d.strings.Intern(entry.PageRef)
		entry.ServerIP = d.strings.Intern(entry.ServerIP)

		d.Entries = append(d.Entries, entry)
		index++
	}

	// consume the array's closing bracket
	if _, err := decoder.Token(); err != nil {
		return fmt.Errorf("failed to parse log entries: %w", err)
	}

	return nil
}

func skipValue(decoder *json.Decoder) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}

	switch token {
	case json.Delim('{'):
		return skipCompound(decoder, true)
	case json.Delim('['):
		return skipCompound(decoder, false)
	}

	return nil
}

func skipCompound(decoder *json.Decoder, object bool) error {
	for decoder.More() {
		if object {
			if _, err := decoder.Token(); err != nil {
				return err
			}
		}
		if err := skipValue(decoder); err != nil {
			return err
		}
	}
	_, err := decoder.Token()
	return err
}
