package importer

import (
	"github.com/alexanderramin/gktimer/internal/domain"
)

// Convert maps a validated legacy document onto domain sessions.
// Stored durations are ignored and recomputed from the timestamps; a
// missing created_at falls back to the start time.
func Convert(doc *LegacyDocument) []*domain.Session {
	sessions := make([]*domain.Session, 0, len(doc.Sessions))
	for _, ls := range doc.Sessions {
		s := &domain.Session{
			ID:        ls.ID,
			StartTime: ls.StartTime.UTC(),
			CreatedAt: ls.CreatedAt.UTC(),
		}
		if ls.CreatedAt.IsZero() {
			s.CreatedAt = s.StartTime
		}
		if ls.EndTime != nil {
			end := ls.EndTime.UTC()
			minutes := domain.WholeMinutes(end.Sub(s.StartTime))
			s.EndTime = &end
			s.DurationMinutes = &minutes
		}
		sessions = append(sessions, s)
	}
	return sessions
}
