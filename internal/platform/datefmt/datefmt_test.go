package datefmt

import (
	"testing"
	"time"
)

func at(month time.Month, day, hour, min int) time.Time {
	return time.Date(2024, month, day, hour, min, 0, 0, time.UTC)
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		lang string
		want string
	}{
		{"english", at(time.January, 15, 0, 0), LangEN, "Jan 15, 2024"},
		{"spanish lowercase month", at(time.January, 15, 0, 0), LangES, "ene 15, 2024"},
		{"single-digit day padded", at(time.March, 5, 0, 0), LangEN, "Mar 05, 2024"},
		{"december", at(time.December, 31, 0, 0), LangES, "dic 31, 2024"},
		{"unknown lang falls back to english", at(time.August, 20, 0, 0), "fr", "Aug 20, 2024"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDate(tc.t, tc.lang); got != tc.want {
				t.Errorf("FormatDate = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		name  string
		t     time.Time
		lang  string
		use24 bool
		want  string
	}{
		{"24h afternoon", at(time.January, 15, 14, 30), LangEN, true, "14:30"},
		{"24h midnight", at(time.January, 15, 0, 5), LangEN, true, "00:05"},
		{"12h afternoon padded hour", at(time.January, 15, 14, 30), LangEN, false, "02:30 PM"},
		{"12h morning", at(time.January, 15, 9, 5), LangEN, false, "09:05 AM"},
		{"12h midnight is 12", at(time.January, 15, 0, 0), LangEN, false, "12:00 AM"},
		{"12h noon is 12", at(time.January, 15, 12, 0), LangEN, false, "12:00 PM"},
		{"spanish meridiem am", at(time.January, 15, 9, 5), LangES, false, "09:05 a. m."},
		{"spanish meridiem pm", at(time.January, 15, 21, 45), LangES, false, "09:45 p. m."},
		{"24h ignores lang", at(time.January, 15, 21, 45), LangES, true, "21:45"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTime(tc.t, tc.lang, tc.use24); got != tc.want {
				t.Errorf("FormatTime = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatEstimatedEnd(t *testing.T) {
	got := FormatEstimatedEnd(at(time.January, 16, 16, 0), LangEN, false)
	if want := "Jan 16, 04:00 PM"; got != want {
		t.Errorf("FormatEstimatedEnd = %q, want %q", got, want)
	}

	got = FormatEstimatedEnd(at(time.January, 16, 16, 0), LangES, true)
	if want := "ene 16, 16:00"; got != want {
		t.Errorf("FormatEstimatedEnd = %q, want %q", got, want)
	}
}
