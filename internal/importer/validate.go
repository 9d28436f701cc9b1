package importer

import (
	"fmt"
)

// ValidateLegacyDocument checks a legacy document before conversion and
// returns every problem found.
func ValidateLegacyDocument(doc *LegacyDocument) []error {
	var errs []error
	seen := make(map[string]bool, len(doc.Sessions))
	var open []string

	for i, s := range doc.Sessions {
		label := fmt.Sprintf("sessions[%d]", i)
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", label))
		} else {
			label = fmt.Sprintf("sessions[%d] (%s)", i, s.ID)
			if seen[s.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id", label))
			}
			seen[s.ID] = true
		}

		if s.StartTime.IsZero() {
			errs = append(errs, fmt.Errorf("%s.start_time is required", label))
			continue
		}
		if s.EndTime == nil {
			open = append(open, label)
			continue
		}
		if !s.EndTime.After(s.StartTime) {
			errs = append(errs, fmt.Errorf("%s.end_time %s must be after start_time %s",
				label, s.EndTime.Format("2006-01-02T15:04:05Z07:00"), s.StartTime.Format("2006-01-02T15:04:05Z07:00")))
		}
	}

	if len(open) > 1 {
		errs = append(errs, fmt.Errorf("at most one session may be running, found %d: %v", len(open), open))
	}
	return errs
}
