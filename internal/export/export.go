package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/domain"
	"gopkg.in/yaml.v3"
)

// Document is the serialized form of a summary. Field names follow the
// legacy session file so exported sessions can be read back by the
// legacy importer.
type Document struct {
	RangeStart           string       `json:"range_start" yaml:"range_start"`
	RangeEnd             string       `json:"range_end" yaml:"range_end"`
	TotalSessions        int          `json:"total_sessions" yaml:"total_sessions"`
	TotalDurationMinutes int          `json:"total_duration_minutes" yaml:"total_duration_minutes"`
	OpenSessions         int          `json:"open_sessions" yaml:"open_sessions"`
	Days                 []DayRecord  `json:"days" yaml:"days"`
	Sessions             []SessionRow `json:"sessions" yaml:"sessions"`
}

type DayRecord struct {
	Date     string `json:"date" yaml:"date"`
	Sessions int    `json:"sessions" yaml:"sessions"`
	Minutes  int    `json:"minutes" yaml:"minutes"`
}

type SessionRow struct {
	ID              string  `json:"id" yaml:"id"`
	StartTime       string  `json:"start_time" yaml:"start_time"`
	EndTime         *string `json:"end_time" yaml:"end_time"`
	DurationMinutes *int    `json:"duration_minutes" yaml:"duration_minutes"`
	CreatedAt       string  `json:"created_at" yaml:"created_at"`
}

var csvHeader = []string{"id", "start_time", "end_time", "duration_minutes", "created_at"}

// NewDocument flattens a summary into its serialized form. Timestamps are
// RFC 3339 in UTC; day dates are in the summary's location.
func NewDocument(resp *app.SummaryResponse) *Document {
	doc := &Document{
		RangeStart:           formatTime(resp.Range.Start),
		RangeEnd:             formatTime(resp.Range.End),
		TotalSessions:        resp.TotalSessions,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		OpenSessions:         resp.OpenSessions,
		Days:                 make([]DayRecord, 0, len(resp.Days)),
		Sessions:             make([]SessionRow, 0, len(resp.Sessions)),
	}
	for _, d := range resp.Days {
		doc.Days = append(doc.Days, DayRecord{
			Date:     d.Date.Format("2006-01-02"),
			Sessions: d.Sessions,
			Minutes:  d.Minutes,
		})
	}
	for _, s := range resp.Sessions {
		doc.Sessions = append(doc.Sessions, newSessionRow(s))
	}
	return doc
}

func newSessionRow(s *domain.Session) SessionRow {
	row := SessionRow{
		ID:              s.ID,
		StartTime:       formatTime(s.StartTime),
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       formatTime(s.CreatedAt),
	}
	if s.EndTime != nil {
		end := formatTime(*s.EndTime)
		row.EndTime = &end
	}
	return row
}

// Write encodes resp to w in the given format.
func Write(w io.Writer, format domain.ExportFormat, resp *app.SummaryResponse) error {
	doc := NewDocument(resp)
	switch format {
	case domain.ExportJSON:
		return writeJSON(w, doc)
	case domain.ExportYAML:
		return writeYAML(w, doc)
	case domain.ExportCSV:
		return writeCSV(w, doc)
	default:
		return fmt.Errorf("unsupported export format %q (use json, yaml or csv)", format)
	}
}

func writeJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return nil
}

// writeCSV emits one row per session; summary totals are not repeated.
func writeCSV(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range doc.Sessions {
		end, minutes := "", ""
		if s.EndTime != nil {
			end = *s.EndTime
		}
		if s.DurationMinutes != nil {
			minutes = strconv.Itoa(*s.DurationMinutes)
		}
		if err := cw.Write([]string{s.ID, s.StartTime, end, minutes, s.CreatedAt}); err != nil {
			return fmt.Errorf("writing csv row %s: %w", s.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
