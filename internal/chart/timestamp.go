package chart

import "time"

// DateLayout is the only accepted textual date form.
const DateLayout = "2006-01-02"

// EncodeDate returns epoch milliseconds at UTC midnight of t's calendar date.
// The time-of-day and location of t are ignored.
func EncodeDate(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).UnixMilli()
}

// ParseDate parses a YYYY-MM-DD string into UTC midnight of that date.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, &MalformedDateError{Input: s}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &MalformedDateError{Input: s, Err: err}
	}
	return t, nil
}

// EncodeDateString is EncodeDate for a YYYY-MM-DD string.
func EncodeDateString(s string) (int64, error) {
	t, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	return EncodeDate(t), nil
}

// DecodeTimestamp converts epoch milliseconds back to a UTC time.
func DecodeTimestamp(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(DateLayout)
}
