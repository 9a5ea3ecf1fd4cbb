package dcasim

import "testing"

func TestFrequencyInterval(t *testing.T) {
	testCases := []struct {
		name string
		in   Frequency
		want float64
	}{
		{"twice a week", TwiceAWeek, 3.5},
		{"weekly", Weekly, 7},
		{"every two weeks", Biweekly, 14},
		{"monthly", Monthly, 30},
		{"loose spelling", Frequency("  Monthly "), 30},
		{"unknown falls back to weekly", Frequency("fortnightly"), 7},
		{"empty falls back to weekly", Frequency(""), 7},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Interval(); got != tc.want {
				t.Errorf("Interval(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseFrequency(t *testing.T) {
	testCases := []struct {
		in     string
		want   Frequency
		wantOK bool
	}{
		{"weekly", Weekly, true},
		{"Twice a week", TwiceAWeek, true},
		{"biweekly", Biweekly, true},
		{"every two weeks", Biweekly, true},
		{"month", Monthly, true},
		{"daily", Weekly, false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseFrequency(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ParseFrequency(%q) = %v,%v want %v,%v", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestDailyRate(t *testing.T) {
	testCases := []struct {
		name    string
		percent float64
		want    float64
	}{
		{"zero", 0, 0},
		{"typical", 4.5, 0.045 / 365},
		{"whole", 36.5, 0.001},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DailyRate(tc.percent); !almostEqual(got, tc.want) {
				t.Errorf("DailyRate(%v) = %v, want %v", tc.percent, got, tc.want)
			}
		})
	}
}
