package service

import (
	"errors"
	"testing"
	"time"
)

func TestParseDatetime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-09-15T18:00:00Z", time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)},
		{"2026-09-15T18:00:00+05:30", time.Date(2026, 9, 15, 12, 30, 0, 0, time.UTC)},
		{"2026-09-15T18:00:00", time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)},
		{"2026-09-15T18:00", time.Date(2026, 9, 15, 18, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDatetime(tc.in)
		if err != nil {
			t.Errorf("ParseDatetime(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDatetime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDatetimeInvalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2026-09-15", "18:00", "15/09/2026 18:00"} {
		if _, err := ParseDatetime(in); err == nil {
			t.Errorf("ParseDatetime(%q): expected error", in)
		} else if !errors.Is(err, ErrValidation) {
			t.Errorf("ParseDatetime(%q): error %v is not a validation error", in, err)
		}
	}
}
