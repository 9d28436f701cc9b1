package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateFlag is a pflag.Value holding a calendar date given as YYYY-MM-DD,
// "today" or "yesterday". Relative words resolve against the command's
// clock when the command runs.
type dateFlag struct {
	raw string
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string { return f.raw }

func (f *dateFlag) Type() string { return "date" }

func (f *dateFlag) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "today", "yesterday":
	default:
		if _, err := time.Parse(dateLayout, v); err != nil {
			return fmt.Errorf("use YYYY-MM-DD, today or yesterday")
		}
	}
	f.raw = v
	return nil
}

func (f *dateFlag) IsSet() bool { return f.raw != "" }

// Resolve returns midnight of the flag's date in now's location.
func (f *dateFlag) Resolve(now time.Time) (time.Time, error) {
	loc := now.Location()
	switch f.raw {
	case "today":
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	case "yesterday":
		y, m, d := now.AddDate(0, 0, -1).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	t, err := time.ParseInLocation(dateLayout, f.raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", f.raw, err)
	}
	return t, nil
}

// rangeFlags is the --from/--to/--day trio shared by report and export.
type rangeFlags struct {
	from, to, day dateFlag
}

func (r *rangeFlags) register(fs *pflag.FlagSet) {
	fs.Var(&r.from, "from", "First day of the range (YYYY-MM-DD, today, yesterday)")
	fs.Var(&r.to, "to", "Last day of the range, inclusive (defaults to today)")
	fs.Var(&r.day, "day", "Single day, instead of --from/--to")
}

// resolve turns the flags into whole calendar days in now's location. With
// no flags it covers today; --from alone runs through today.
func (r *rangeFlags) resolve(now time.Time) (start, end time.Time, err error) {
	if r.day.IsSet() {
		if r.from.IsSet() || r.to.IsSet() {
			return time.Time{}, time.Time{}, fmt.Errorf("--day cannot be combined with --from or --to")
		}
		d, err := r.day.Resolve(now)
		return d, d, err
	}

	today := dateFlag{raw: "today"}
	if start, err = today.Resolve(now); err != nil {
		return
	}
	end = start
	if r.from.IsSet() {
		if start, err = r.from.Resolve(now); err != nil {
			return
		}
	}
	if r.to.IsSet() {
		if end, err = r.to.Resolve(now); err != nil {
			return
		}
	}
	return start, end, nil
}
