package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// LegacyDocument is the JSON file written by the desktop timer before the
// SQLite store existed.
type LegacyDocument struct {
	Sessions []LegacySession `json:"sessions"`
}

// LegacySession is one stored work session. Timestamps are RFC 3339.
type LegacySession struct {
	ID              string     `json:"id"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationMinutes *int       `json:"duration_minutes"`
	CreatedAt       time.Time  `json:"created_at"`
}

// LoadLegacyDocument reads and parses a legacy session file.
func LoadLegacyDocument(path string) (*LegacyDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading legacy file: %w", err)
	}
	return ParseLegacyDocument(data)
}

// ParseLegacyDocument parses the JSON bytes of a legacy session file.
func ParseLegacyDocument(data []byte) (*LegacyDocument, error) {
	var doc LegacyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing legacy JSON: %w", err)
	}
	return &doc, nil
}
