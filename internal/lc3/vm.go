package lc3

// VM bundles the register file and memory the execution engine
// operates on, plus the console traps read and write. It has no
// concept of an instruction stream; loading an object image and
// driving the fetch loop are the outer driver's job (spec.md marks
// both out of scope for this package).
type VM struct {
	Reg     *Registers
	Mem     *Memory
	Console *Console
}

// New returns a VM with PC set to origin, COND initialized to Z, and
// memory wired to console for KBSR/KBDR polling.
func New(origin uint16, console *Console) *VM {
	return &VM{
		Reg:     NewRegisters(origin),
		Mem:     NewMemory(console),
		Console: console,
	}
}

// Fetch reads the instruction word at PC and advances PC past it, as
// the fetch/decode/dispatch contract in spec.md §2 requires of the
// (external) driver. It is provided here, mirroring the teacher's
// vm.Fetch, purely so cmd/lc3vm doesn't have to duplicate it.
func (vm *VM) Fetch() uint16 {
	instr := vm.Mem.Read(vm.Reg.PC())
	vm.Reg.SetPC(vm.Reg.PC() + 1)
	return instr
}
