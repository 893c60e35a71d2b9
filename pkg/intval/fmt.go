package intval

import "fmt"

// String renders the value in decimal; NaN prints as "NaN".
func (v Value) String() string {
	if v.mag == nil {
		return "NaN"
	}
	return v.mag.String()
}

// Text renders the value in the given base (2..36); NaN prints as "NaN".
func (v Value) Text(base int) string {
	if v.mag == nil {
		return "NaN"
	}
	return v.mag.Text(base)
}

// Format implements fmt.Formatter so %d, %x, %X, %b and %v behave like they
// do for the underlying magnitude, with NaN printed as "NaN" for any verb.
func (v Value) Format(s fmt.State, ch rune) {
	if v.mag == nil {
		fmt.Fprint(s, "NaN")
		return
	}
	v.mag.Format(s, ch)
}
