package dcasim

import "strings"

// Frequency is the cadence at which the periodic investment is attempted.
//
// It is a closed enumeration of named cadences. An unrecognized value is
// not an error: Interval resolves it to the weekly interval. Callers that
// want to reject bad input up front can use ParseFrequency.
type Frequency string

const (
	TwiceAWeek Frequency = "twice a week"
	Weekly     Frequency = "weekly"
	Biweekly   Frequency = "every two weeks"
	Monthly    Frequency = "monthly"
)

// Interval returns the number of days between two investment attempts.
//
// The interval may be fractional: "twice a week" resolves to 3.5 days. It
// is compared against an integer day counter with >=, so 3.5 triggers on
// the fourth day after the previous investment.
//
// Unknown cadences resolve to the weekly interval. This fallback is part of
// the contract, not a validation gap.
func (f Frequency) Interval() float64 {
	switch f.canonical() {
	case TwiceAWeek:
		return 3.5
	case Weekly:
		return 7
	case Biweekly:
		return 14
	case Monthly:
		return 30
	default:
		return 7
	}
}

func (f Frequency) String() string { return string(f.canonical()) }

// canonical lowercases and trims so that scenario files may spell
// frequencies loosely ("Weekly", "monthly ").
func (f Frequency) canonical() Frequency {
	return Frequency(strings.ToLower(strings.TrimSpace(string(f))))
}

// ParseFrequency returns the Frequency named by s, accepting a few common
// aliases, and false when the name is not part of the enumeration.
func ParseFrequency(s string) (Frequency, bool) {
	switch Frequency(s).canonical() {
	case TwiceAWeek, "twice-a-week":
		return TwiceAWeek, true
	case Weekly, "week":
		return Weekly, true
	case Biweekly, "biweekly", "every-two-weeks":
		return Biweekly, true
	case Monthly, "month":
		return Monthly, true
	default:
		return Weekly, false
	}
}
