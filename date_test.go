package dcasim

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		want      Date
		expectErr bool
	}{
		{"ISO", "2024-01-01", NewDate(2024, time.January, 1), false},
		{"Permissive single digits", "2025-7-1", NewDate(2025, time.July, 1), false},
		{"Empty", "", Date{}, true},
		{"Garbage", "yesterday", Date{}, true},
		{"Wrong order", "01-02-2024", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if (err != nil) != tc.expectErr {
				t.Fatalf("ParseDate(%q) error = %v, want error: %v", tc.in, err, tc.expectErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateSub(t *testing.T) {
	if got := jan1.Add(27).Sub(jan1); got != 27 {
		t.Errorf("Sub() = %d, want 27", got)
	}
	if got := jan1.Sub(jan1); got != 0 {
		t.Errorf("Sub() same day = %d, want 0", got)
	}
}

func TestRangeDays(t *testing.T) {
	r := Range{From: jan1, To: jan1.Add(30)} // spans into February
	if r.Len() != 31 {
		t.Fatalf("Len() = %d, want 31", r.Len())
	}
	count := 0
	for on := range r.Days() {
		if on != jan1.Add(count) {
			t.Fatalf("day #%d = %v, want %v", count, on, jan1.Add(count))
		}
		count++
	}
	if count != 31 {
		t.Errorf("Days() yielded %d days, want 31", count)
	}
}

func TestNewRangeSwaps(t *testing.T) {
	r := NewRange(jan1.Add(5), jan1)
	if r.From != jan1 || r.To != jan1.Add(5) {
		t.Errorf("NewRange did not swap: %v", r)
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(jan1, 10)
	h.Append(jan1.Add(4), 12)

	testCases := []struct {
		name   string
		day    Date
		want   float64
		wantOK bool
	}{
		{"exact first", jan1, 10, true},
		{"between falls back", jan1.Add(2), 10, true},
		{"exact second", jan1.Add(4), 12, true},
		{"after last", jan1.Add(9), 12, true},
		{"before first", jan1.Add(-1), 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(tc.day)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ValueAsOf(%v) = %v,%v want %v,%v", tc.day, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestHistoryAppendKeepsOrder(t *testing.T) {
	var h History[float64]
	h.Append(jan1.Add(3), 3)
	h.Append(jan1, 1)
	h.Append(jan1.Add(1), 2)

	var days []Date
	for on := range h.Values() {
		days = append(days, on)
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Before(days[i]) {
			t.Fatalf("history out of order: %v", days)
		}
	}
	if v, ok := h.Get(jan1.Add(1)); !ok || v != 2 {
		t.Errorf("Get() = %v,%v want 2,true", v, ok)
	}
}
