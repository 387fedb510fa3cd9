// Package schedule evaluates candidate appointment times against a doctor's
// published weekly availability. It is pure: no clock, no storage, no I/O.
package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Slot is one weekly availability window. DayOfWeek follows time.Weekday
// numbering: 0=Sunday .. 6=Saturday. Times are 24h "HH:mm" on the local
// clock; no timezone conversion is applied.
type Slot struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Weekly is an ordered set of slots. Multiple slots may share a day
// (non-contiguous availability). An empty Weekly means unconstrained:
// legacy doctors without a structured schedule accept any time.
type Weekly []Slot

const (
	defaultStartMinutes = 0         // "00:00"
	defaultEndMinutes   = 23*60 + 59 // "23:59"
)

// Admissible reports whether t falls inside at least one slot for its
// weekday. The window is half-open, [start, end): a candidate exactly at
// a slot's end time is rejected. Malformed time strings degrade to the
// widest bound for that side rather than failing.
func (w Weekly) Admissible(t time.Time) bool {
	if len(w) == 0 {
		return true
	}

	day := int(t.Weekday())
	minute := t.Hour()*60 + t.Minute()

	for _, s := range w {
		if s.DayOfWeek != day {
			continue
		}
		start := parseMinutes(s.StartTime, defaultStartMinutes)
		end := parseMinutes(s.EndTime, defaultEndMinutes)
		if minute >= start && minute < end {
			return true
		}
	}
	return false
}

// Validate checks slots a doctor is about to publish: day in range and,
// when both bounds parse, start strictly before end. Unlike Admissible it
// rejects rather than degrades, so bad slots never reach the store.
func (w Weekly) Validate() error {
	for i, s := range w {
		if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
			return &SlotError{Index: i, Reason: "day_of_week must be 0 (Sunday) through 6 (Saturday)"}
		}
		start, startOK := tryParseMinutes(s.StartTime)
		end, endOK := tryParseMinutes(s.EndTime)
		if s.StartTime != "" && !startOK {
			return &SlotError{Index: i, Reason: "start_time must be HH:mm"}
		}
		if s.EndTime != "" && !endOK {
			return &SlotError{Index: i, Reason: "end_time must be HH:mm"}
		}
		if startOK && endOK && start >= end {
			return &SlotError{Index: i, Reason: "start_time must be before end_time"}
		}
	}
	return nil
}

// SlotError identifies the offending slot when publishing a schedule.
type SlotError struct {
	Index  int
	Reason string
}

func (e *SlotError) Error() string {
	return "slot " + strconv.Itoa(e.Index) + ": " + e.Reason
}

// parseMinutes converts "HH:mm" to minutes past midnight, falling back to
// def for empty or malformed input.
func parseMinutes(s string, def int) int {
	if m, ok := tryParseMinutes(s); ok {
		return m
	}
	return def
}

func tryParseMinutes(s string) (int, bool) {
	h, m, ok := splitClock(s)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

func splitClock(s string) (hour, minute int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
