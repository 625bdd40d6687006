// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod is a time of day (no date, no zone). Values compare by seconds since
// midnight, so Tod works as an opaque ordered value for room hours and
// request windows. Columns must be tagged `type:time`.
type Tod struct{ time.Time }

// From keeps HH:mm:ss of t and drops date and zone.
func From(t time.Time) Tod {
	return Tod{Time: time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)}
}

// Parse accepts "HH:MM" or "HH:MM:SS".
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

func MustParse(s string) Tod {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return fmt.Errorf("tod: invalid time of day %q", s)
	}
	*t = From(tt)
	return nil
}

// Seconds since midnight.
func (t Tod) Seconds() int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

func (t Tod) Before(o Tod) bool { return t.Seconds() < o.Seconds() }
func (t Tod) After(o Tod) bool  { return t.Seconds() > o.Seconds() }
func (t Tod) Equal(o Tod) bool  { return t.Seconds() == o.Seconds() }

// String renders "HH:MM:SS".
func (t Tod) String() string { return t.Format("15:04:05") }

// Scan accepts time.Time or "HH:MM[:SS[.ffffff]]".
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = From(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		*t = Tod{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

// Value sends "HH:MM:SS" so Postgres TIME (and SQLite text) understand it.
func (t Tod) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.String(), nil
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
