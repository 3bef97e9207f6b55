package lc3

// The following constants define the condition codes held in COND.
// Exactly one is set at any time, reflecting the sign of the last
// value written to a general-purpose register.
const (
	CondPositive = uint16(1 << 0) // P
	CondZero     = uint16(1 << 1) // Z
	CondNegative = uint16(1 << 2) // N
)

// NumGPR is the number of general-purpose registers, R0..R7.
const NumGPR = 8

// Registers is the LC-3 register file: eight general-purpose
// registers, the program counter, and the condition-code register.
//
// Registers is not goroutine safe; a single goroutine (the fetch loop)
// is expected to drive it.
type Registers struct {
	gpr  [NumGPR]uint16
	pc   uint16
	cond uint16
}

// NewRegisters returns a register file with PC set to origin and COND
// initialized to Z, as permitted by spec.
func NewRegisters(origin uint16) *Registers {
	return &Registers{pc: origin, cond: CondZero}
}

// Get returns the value of general-purpose register i. i must be in
// [0, 7].
func (r *Registers) Get(i uint16) uint16 {
	return r.gpr[i&0x7]
}

// Set writes v to general-purpose register i. It does not update COND;
// callers that need the condition code updated call SetCC afterward.
func (r *Registers) Set(i, v uint16) {
	r.gpr[i&0x7] = v
}

// SetCC updates COND from the current value of general-purpose
// register i: zero maps to Z, a set sign bit maps to N, anything else
// maps to P.
func (r *Registers) SetCC(i uint16) {
	v := r.Get(i)
	switch {
	case v == 0:
		r.cond = CondZero
	case v&0x8000 != 0:
		r.cond = CondNegative
	default:
		r.cond = CondPositive
	}
}

// PC returns the program counter.
func (r *Registers) PC() uint16 {
	return r.pc
}

// SetPC sets the program counter.
func (r *Registers) SetPC(v uint16) {
	r.pc = v
}

// Cond returns the condition-code register.
func (r *Registers) Cond() uint16 {
	return r.cond
}
