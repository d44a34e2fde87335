// Package dateutil parses and formats calendar dates in YYYY-MM-DD form,
// ignoring any time of day.
package dateutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// LayoutYMD is the time layout of FormatYMD.
const LayoutYMD = "2006-01-02"

var ymdPattern = regexp.MustCompile(`^\d+-\d+-\d+$`)

// CreateDate builds a local midnight date. Out-of-range months and days
// normalise the way time.Date does.
func CreateDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// ParseYMD turns a "Y-M-D" string, a time.Time or a *time.Time into a date
// with no time information. Anything else yields false.
func ParseYMD(v any) (time.Time, bool) {
	switch d := v.(type) {
	case string:
		s := strings.TrimSpace(d)
		if !ymdPattern.MatchString(s) {
			return time.Time{}, false
		}
		parts := strings.Split(s, "-")
		year, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		day, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, false
		}
		return CreateDate(year, time.Month(month), day), true
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return CreateDate(d.Year(), d.Month(), d.Day()), true
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return ParseYMD(*d)
	default:
		return time.Time{}, false
	}
}

// FormatYMD renders v as YYYY-MM-DD. It returns false when v is not a date.
func FormatYMD(v any) (string, bool) {
	d, ok := ParseYMD(v)
	if !ok {
		return "", false
	}
	return d.Format(LayoutYMD), true
}

// DatesEqual reports whether a and b fall on the same calendar day. Two
// values that are both not dates count as equal; a date never equals a
// non-date.
func DatesEqual(a, b any) bool {
	da, okA := ParseYMD(a)
	db, okB := ParseYMD(b)
	if !okA || !okB {
		return okA == okB
	}
	return da.Equal(db)
}

// AddDays returns the date n days after base.
func AddDays(base time.Time, n int) time.Time {
	return CreateDate(base.Year(), base.Month(), base.Day()+n)
}
