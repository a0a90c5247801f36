package domain

import "strings"

// skipPrefix is the first character of the bracket-wrapped skip sentinel used
// in the portable export format. Any imported value starting with it is
// treated as a skip marker regardless of language.
const skipPrefix = "["

// Answer is a recorded response to a single question prompt. It is a tagged
// variant: either an answered value or an explicit skip, never a string
// convention internally.
type Answer struct {
	Value   string
	Skipped bool
}

// Answered returns an answer carrying the given value.
func Answered(value string) Answer {
	return Answer{Value: value}
}

// Skip returns the skip variant.
func Skip() Answer {
	return Answer{Skipped: true}
}

// IsSubstantive reports whether the answer counts toward totalAnswersGiven:
// answered with a non-empty value.
func (a Answer) IsSubstantive() bool {
	return !a.Skipped && a.Value != ""
}

// WireValue renders the answer for the portable export document, using marker
// as the skip sentinel.
func (a Answer) WireValue(marker string) string {
	if a.Skipped {
		return marker
	}
	return a.Value
}

// ParseWireValue interprets a raw imported string value: bracket-prefixed
// values are skip markers, everything else is a real answer.
func ParseWireValue(v string) Answer {
	if strings.HasPrefix(v, skipPrefix) {
		return Skip()
	}
	return Answered(v)
}

// Ledger maps exact question-prompt text to the recorded answer.
type Ledger map[string]Answer

// SubstantiveCount returns how many entries count toward totalAnswersGiven.
func (l Ledger) SubstantiveCount() int {
	n := 0
	for _, a := range l {
		if a.IsSubstantive() {
			n++
		}
	}
	return n
}

// Pending reports whether the question is still open to the scheduler:
// no entry at all, or a skip marker.
func (l Ledger) Pending(question string) bool {
	a, ok := l[question]
	return !ok || a.Skipped
}
