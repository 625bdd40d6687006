// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// ParseDate reads an ISO calendar date ("2006-01-02"); a full RFC3339
// timestamp is accepted and truncated to its date part.
func ParseDate(s string) (datatypes.Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return datatypes.Date(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.Date()
		return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC)), nil
	}
	return datatypes.Date{}, fmt.Errorf("dbtime: invalid date %q", s)
}

// Today is the current calendar day in loc, expressed as a UTC midnight so
// it compares directly with ParseDate results.
func Today(now time.Time, loc *time.Location) datatypes.Date {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// DateOnly normalises a stored date (drivers may attach a zone) to UTC midnight.
func DateOnly(d datatypes.Date) datatypes.Date {
	y, m, dd := time.Time(d).Date()
	return datatypes.Date(time.Date(y, m, dd, 0, 0, 0, 0, time.UTC))
}

func BeforeDate(a, b datatypes.Date) bool {
	return time.Time(DateOnly(a)).Before(time.Time(DateOnly(b)))
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}
