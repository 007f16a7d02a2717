// Package dates validates the literal date strings used on the wire and in
// both backends: dates as YYYY-MM-DD, times as HH:MM, months as YYYY-MM.
package dates

import "time"

const (
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04"
	MonthLayout = "2006-01"
)

// time.Parse alone is too lax for wire validation: the "01"/"02"/"15"
// layout tokens accept non-padded values, and an unpadded "9:30" sorts
// after "10:00". Round-tripping through Format enforces exact padding.
func valid(layout, s string) bool {
	t, err := time.Parse(layout, s)
	return err == nil && t.Format(layout) == s
}

func IsValidDate(s string) bool {
	return valid(DateLayout, s)
}

func IsValidTime(s string) bool {
	return valid(TimeLayout, s)
}

func IsValidMonth(s string) bool {
	return valid(MonthLayout, s)
}

// Today returns the current local date in wire format.
func Today() string {
	return time.Now().Format(DateLayout)
}

// NowStamp is the request timestamp written on public submissions.
func NowStamp() string {
	return time.Now().Format(time.RFC3339)
}
