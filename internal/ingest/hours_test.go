package ingest

import "testing"

func TestParseOperatingHours(t *testing.T) {
	cases := []struct {
		hours       string
		open, close string
	}{
		{"12:00 AM - 12:00 PM", "00:00", "12:00"},
		{"9:30 AM - 9:30 PM", "09:30", "21:30"},
		{"Mon-Fri 8AM-5PM, Sat 9AM-1PM", "08:00", "13:00"},
		{"11am-10pm", "11:00", "22:00"},
		{"1130AM-1030PM", "11:30", "22:30"},
		{"Daily 7:00AM–11:00PM", "07:00", "23:00"},
		{"Lunch 11AM-2PM, Dinner 5PM-10PM", "11:00", "22:00"},
	}
	for _, tc := range cases {
		open, close := ParseOperatingHours(tc.hours)
		if open != tc.open || close != tc.close {
			t.Errorf("ParseOperatingHours(%q) = %s-%s, want %s-%s", tc.hours, open, close, tc.open, tc.close)
		}
	}
}

func TestParseOperatingHours_Defaults(t *testing.T) {
	for _, hours := range []string{"", "Closed", "9:30 PM", "Open 24 hours", "13PM - 5PM"} {
		open, close := ParseOperatingHours(hours)
		if open != "11:00" || close != "22:00" {
			t.Errorf("ParseOperatingHours(%q) = %s-%s, want default 11:00-22:00", hours, open, close)
		}
	}
}

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		hour, minute, period string
		want                 string
		ok                   bool
	}{
		{"12", "00", "AM", "00:00", true},
		{"12", "", "PM", "12:00", true},
		{"9", "30", "pm", "21:30", true},
		{"1", "05", "AM", "01:05", true},
		{"11", "", "am", "11:00", true},
		{"0", "", "AM", "", false},
		{"13", "", "PM", "", false},
		{"9", "75", "AM", "", false},
	}
	for _, tc := range cases {
		got, ok := to24Hour(tc.hour, tc.minute, tc.period)
		if ok != tc.ok || got != tc.want {
			t.Errorf("to24Hour(%q, %q, %q) = %q, %v; want %q, %v", tc.hour, tc.minute, tc.period, got, ok, tc.want, tc.ok)
		}
	}
}
