package domain

import "time"

// DateRange is a half-open interval [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether Start is strictly before End.
func (r DateRange) Valid() bool {
	return r.Start.Before(r.End)
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Location returns the location of Start, used for calendar-day grouping.
func (r DateRange) Location() *time.Location {
	return r.Start.Location()
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayRange returns the calendar day containing t in loc.
func DayRange(t time.Time, loc *time.Location) DateRange {
	start := StartOfDay(t, loc)
	return DateRange{Start: start, End: start.AddDate(0, 0, 1)}
}

// CalendarDaysRange covers every calendar day from the day of from through the
// day of to, inclusive. Both are interpreted in loc.
func CalendarDaysRange(from, to time.Time, loc *time.Location) DateRange {
	return DateRange{
		Start: StartOfDay(from, loc),
		End:   StartOfDay(to, loc).AddDate(0, 0, 1),
	}
}
