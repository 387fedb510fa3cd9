package schedule

import (
	"testing"
	"time"
)

// 2025-06-02 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2025, time.June, 2, hour, minute, 0, 0, time.Local)
}

func TestAdmissible_EmptySchedule(t *testing.T) {
	var w Weekly

	times := []time.Time{
		monday(0, 0),
		monday(23, 59),
		monday(12, 30).AddDate(0, 0, 3),
	}
	for _, tt := range times {
		if !w.Admissible(tt) {
			t.Errorf("empty schedule rejected %v; want admissible", tt)
		}
	}
}

func TestAdmissible_Boundaries(t *testing.T) {
	w := Weekly{{DayOfWeek: 1, StartTime: "18:00", EndTime: "20:00"}}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"start is inclusive", monday(18, 0), true},
		{"inside window", monday(18, 30), true},
		{"last minute", monday(19, 59), true},
		{"end is exclusive", monday(20, 0), false},
		{"minute before start", monday(17, 59), false},
		{"after window", monday(21, 0), false},
		{"right day wrong week offset", monday(18, 30).AddDate(0, 0, 7), true},
		{"wrong day same time", monday(18, 30).AddDate(0, 0, 1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Admissible(tc.at); got != tc.want {
				t.Errorf("Admissible(%v) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}

func TestAdmissible_MultipleSlotsSameDay(t *testing.T) {
	w := Weekly{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "18:00", EndTime: "20:00"},
	}

	if !w.Admissible(monday(10, 15)) {
		t.Error("morning slot rejected")
	}
	if !w.Admissible(monday(19, 0)) {
		t.Error("evening slot rejected")
	}
	if w.Admissible(monday(14, 0)) {
		t.Error("gap between slots accepted")
	}
}

func TestAdmissible_MalformedTimesDegrade(t *testing.T) {
	tests := []struct {
		name string
		w    Weekly
		at   time.Time
		want bool
	}{
		{
			name: "missing start defaults to 00:00",
			w:    Weekly{{DayOfWeek: 1, EndTime: "12:00"}},
			at:   monday(0, 30),
			want: true,
		},
		{
			name: "missing end defaults to 23:59",
			w:    Weekly{{DayOfWeek: 1, StartTime: "18:00"}},
			at:   monday(23, 30),
			want: true,
		},
		{
			name: "garbage start degrades rather than raising",
			w:    Weekly{{DayOfWeek: 1, StartTime: "noon", EndTime: "20:00"}},
			at:   monday(8, 0),
			want: true,
		},
		{
			name: "default end is still exclusive at 23:59",
			w:    Weekly{{DayOfWeek: 1, StartTime: "18:00"}},
			at:   monday(23, 59),
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.w.Admissible(tc.at); got != tc.want {
				t.Errorf("Admissible(%v) = %v, want %v", tc.at, got, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		w       Weekly
		wantErr bool
	}{
		{"empty is valid", Weekly{}, false},
		{"well formed", Weekly{{DayOfWeek: 1, StartTime: "18:00", EndTime: "20:00"}}, false},
		{"open bounds are valid", Weekly{{DayOfWeek: 3}}, false},
		{"day too large", Weekly{{DayOfWeek: 7, StartTime: "08:00", EndTime: "10:00"}}, true},
		{"negative day", Weekly{{DayOfWeek: -1}}, true},
		{"start after end", Weekly{{DayOfWeek: 1, StartTime: "20:00", EndTime: "18:00"}}, true},
		{"start equals end", Weekly{{DayOfWeek: 1, StartTime: "18:00", EndTime: "18:00"}}, true},
		{"unparseable start", Weekly{{DayOfWeek: 1, StartTime: "6pm", EndTime: "20:00"}}, true},
		{"hour out of range", Weekly{{DayOfWeek: 1, StartTime: "25:00", EndTime: "26:00"}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.w.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
