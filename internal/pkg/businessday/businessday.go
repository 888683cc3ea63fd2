package businessday

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format of a business day.
	DateLayout = "2006-01-02"

	// RolloverHour is the local hour at which a new attendance business day starts.
	RolloverHour = 6

	// SalesShiftHours is the length of each of the three sales shifts.
	SalesShiftHours = 8

	utcOffsetSeconds = 8 * 60 * 60
)

// Location is Asia/Manila pinned at UTC+8. It is a fixed zone on purpose:
// the boundaries below must never move with a tz database update.
var Location = time.FixedZone("Asia/Manila", utcOffsetSeconds)

// Shift is a named attendance shift within a business day.
type Shift string

const (
	ShiftPrime    Shift = "prime"    // 06:00 - 14:00
	ShiftMidshift Shift = "midshift" // 14:00 - 22:00
	ShiftClosing  Shift = "closing"  // 22:00 - 06:00 next calendar day
)

// Shifts lists the attendance shifts in the order they occur.
var Shifts = []Shift{ShiftPrime, ShiftMidshift, ShiftClosing}

// IsValid reports whether s is one of the known attendance shifts.
func (s Shift) IsValid() bool {
	switch s {
	case ShiftPrime, ShiftMidshift, ShiftClosing:
		return true
	}
	return false
}

// startOffset is the shift start measured from the business day start.
func (s Shift) startOffset() time.Duration {
	switch s {
	case ShiftMidshift:
		return 8 * time.Hour
	case ShiftClosing:
		return 16 * time.Hour
	default:
		return 0
	}
}

// ParseShift parses a shift name. An empty string is rejected.
func ParseShift(value string) (Shift, error) {
	s := Shift(value)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown shift %q", value)
	}
	return s, nil
}

// SalesShift is one of the three fixed 8-hour sales windows of a local calendar day.
type SalesShift struct {
	Date      string    `json:"date"`
	StartHour int       `json:"start_hour"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// AttendanceDay returns the attendance business day containing t.
// Instants before 06:00 local belong to the previous calendar date.
func AttendanceDay(t time.Time) string {
	return attendanceDayStart(t).Format(DateLayout)
}

// attendanceDayStart returns the 06:00 local instant that opened the business day of t.
func attendanceDayStart(t time.Time) time.Time {
	local := t.In(Location)
	start := time.Date(local.Year(), local.Month(), local.Day(), RolloverHour, 0, 0, 0, Location)
	if local.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return start
}

// AttendanceShift returns the business day and the attendance shift in effect at t.
func AttendanceShift(t time.Time) (string, Shift) {
	dayStart := attendanceDayStart(t)
	elapsed := t.In(Location).Sub(dayStart)

	shift := ShiftPrime
	switch {
	case elapsed >= 16*time.Hour:
		shift = ShiftClosing
	case elapsed >= 8*time.Hour:
		shift = ShiftMidshift
	}
	return dayStart.Format(DateLayout), shift
}

// CurrentSalesShift returns the sales shift containing t: the most recent
// 00:00, 08:00 or 16:00 local boundary at or before t.
func CurrentSalesShift(t time.Time) SalesShift {
	local := t.In(Location)
	startHour := (local.Hour() / SalesShiftHours) * SalesShiftHours
	start := time.Date(local.Year(), local.Month(), local.Day(), startHour, 0, 0, 0, Location)
	return SalesShift{
		Date:      start.Format(DateLayout),
		StartHour: startHour,
		Start:     start,
		End:       start.Add(SalesShiftHours * time.Hour),
	}
}

// ParseDay parses a business day string in the portal zone.
func ParseDay(day string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, day, Location)
}

// DayRange returns the [start, end) instants of an attendance business day.
func DayRange(day string) (time.Time, time.Time, error) {
	d, err := ParseDay(day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := d.Add(RolloverHour * time.Hour)
	return start, start.AddDate(0, 0, 1), nil
}

// ShiftRange returns the [start, end) instants of an attendance shift.
func ShiftRange(day string, shift Shift) (time.Time, time.Time, error) {
	dayStart, _, err := DayRange(day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := dayStart.Add(shift.startOffset())
	return start, start.Add(8 * time.Hour), nil
}

// LastNDays returns the n attendance business days ending with the one containing now, oldest first.
func LastNDays(now time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}
	last := attendanceDayStart(now)
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, last.AddDate(0, 0, -i).Format(DateLayout))
	}
	return days
}

// SalesWindow returns the [start, now] range covering the last n local calendar days.
// Sales use midnight-aligned days, unlike attendance.
func SalesWindow(now time.Time, n int) (time.Time, time.Time) {
	if n < 1 {
		n = 1
	}
	local := now.In(Location)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location)
	return midnight.AddDate(0, 0, -(n - 1)), local
}
