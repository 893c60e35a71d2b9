package intval

// Mode is the runtime selector used by the operator bindings: the VM's
// execution state knows only at run time whether it is in throwing or quiet
// mode, so the binding layer maps a Mode onto the compile-time Behavior once
// per operation. The core stays generic; nothing below adds per-operation
// branching inside the framework itself.
type Mode int

const (
	CheckedMode Mode = iota
	QuietMode
)

func (m Mode) String() string {
	if m == QuietMode {
		return "quiet"
	}
	return "checked"
}

// Operator-style methods with checked semantics, for hosts that want plain
// Go syntax over values. Division uses the VM's default floor rounding.

func (v Value) Add(other Value) (Value, error) { return Add[Checked](v, other) }
func (v Value) Sub(other Value) (Value, error) { return Sub[Checked](v, other) }
func (v Value) Mul(other Value) (Value, error) { return Mul[Checked](v, other) }
func (v Value) Neg() (Value, error)            { return Neg[Checked](v) }

func (v Value) Div(other Value) (Value, error) { return Div[Checked](v, other, FloorRound) }
func (v Value) Mod(other Value) (Value, error) { return Mod[Checked](v, other, FloorRound) }

func (v Value) And(other Value) (Value, error) { return And[Checked](v, other) }
func (v Value) Or(other Value) (Value, error)  { return Or[Checked](v, other) }
func (v Value) Xor(other Value) (Value, error) { return Xor[Checked](v, other) }
func (v Value) Not() (Value, error)            { return Not[Checked](v) }

func (v Value) Shl(shift uint) (Value, error) { return Shl[Checked](v, shift) }
func (v Value) Shr(shift uint) (Value, error) { return Shr[Checked](v, shift) }

// Less reports v < other with checked NaN handling.
func (v Value) Less(other Value) (bool, error) {
	ord, _, err := Cmp[Checked](v, other)
	return ord < 0, err
}

// Greater reports v > other with checked NaN handling.
func (v Value) Greater(other Value) (bool, error) {
	ord, _, err := Cmp[Checked](v, other)
	return ord > 0, err
}

// Mode-dispatched bindings, one per operator the VM exposes.

func AddMode(m Mode, lhs, rhs Value) (Value, error) {
	if m == QuietMode {
		return Add[Quiet](lhs, rhs)
	}
	return Add[Checked](lhs, rhs)
}

func SubMode(m Mode, lhs, rhs Value) (Value, error) {
	if m == QuietMode {
		return Sub[Quiet](lhs, rhs)
	}
	return Sub[Checked](lhs, rhs)
}

func MulMode(m Mode, lhs, rhs Value) (Value, error) {
	if m == QuietMode {
		return Mul[Quiet](lhs, rhs)
	}
	return Mul[Checked](lhs, rhs)
}

func NegMode(m Mode, operand Value) (Value, error) {
	if m == QuietMode {
		return Neg[Quiet](operand)
	}
	return Neg[Checked](operand)
}

func DivModMode(m Mode, lhs, rhs Value, round RoundMode) (Value, Value, error) {
	if m == QuietMode {
		return DivMod[Quiet](lhs, rhs, round)
	}
	return DivMod[Checked](lhs, rhs, round)
}

func AndMode(m Mode, lhs, rhs Value) (Value, error) {
	if m == QuietMode {
		return And[Quiet](lhs, rhs)
	}
	return And[Checked](lhs, rhs)
}

func OrMode(m Mode, lhs, rhs Value) (Value, error) {
	if m == QuietMode {
		return Or[Quiet](lhs, rhs)
	}
	return Or[Checked](lhs, rhs)
}

func XorMode(m Mode, lhs, rhs Value) (Value, error) {
	if m == QuietMode {
		return Xor[Quiet](lhs, rhs)
	}
	return Xor[Checked](lhs, rhs)
}

func NotMode(m Mode, operand Value) (Value, error) {
	if m == QuietMode {
		return Not[Quiet](operand)
	}
	return Not[Checked](operand)
}

func ShlMode(m Mode, operand Value, shift uint) (Value, error) {
	if m == QuietMode {
		return Shl[Quiet](operand, shift)
	}
	return Shl[Checked](operand, shift)
}

func ShrMode(m Mode, operand Value, shift uint) (Value, error) {
	if m == QuietMode {
		return Shr[Quiet](operand, shift)
	}
	return Shr[Checked](operand, shift)
}

func CmpMode(m Mode, lhs, rhs Value) (ord int, ok bool, err error) {
	if m == QuietMode {
		return Cmp[Quiet](lhs, rhs)
	}
	return Cmp[Checked](lhs, rhs)
}
