package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTod(t *testing.T) {
	for in, want := range map[string]string{
		"09:00":    "09:00:00",
		"9:05":     "",
		"18:30:15": "18:30:15",
		" 07:45 ":  "07:45:00",
		"25:00":    "",
		"noon":     "",
	} {
		got, err := Parse(in)
		if want == "" {
			assert.Error(t, err, in)
			continue
		}
		require.NoError(t, err, in)
		assert.Equal(t, want, got.String())
	}
}

func TestTodOrdering(t *testing.T) {
	a, b := MustParse("09:00"), MustParse("09:00:01")
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(MustParse("09:00:00")))
	assert.Equal(t, 9*3600, a.Seconds())
}

func TestTodScan(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("10:30:00"))
	assert.Equal(t, "10:30:00", tod.String())

	require.NoError(t, tod.Scan([]byte("11:15:00.000000")))
	assert.Equal(t, "11:15:00", tod.String())

	require.NoError(t, tod.Scan(time.Date(2026, 1, 2, 12, 0, 5, 0, time.FixedZone("X", 3600))))
	assert.Equal(t, "12:00:05", tod.String())

	assert.Error(t, tod.Scan(42))

	v, err := MustParse("08:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", v)
}

func TestTodJSON(t *testing.T) {
	var got struct {
		H Tod `json:"h"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"h":"14:20"}`), &got))
	assert.Equal(t, "14:20:00", got.H.String())

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"h":"14:20:00"}`, string(b))
}

func TestDates(t *testing.T) {
	d, err := ParseDate("2026-10-20")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", FormatDate(d))

	d2, err := ParseDate("2026-10-20T23:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", FormatDate(d2))

	_, err = ParseDate("20/10/2026")
	assert.Error(t, err)

	now := time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-17", FormatDate(Today(now, time.UTC)))
	assert.Equal(t, "2026-10-18", FormatDate(Today(now, time.FixedZone("UTC+1", 3600))))

	assert.True(t, BeforeDate(Today(now, time.UTC), d))
	assert.False(t, BeforeDate(d, d2))
}
