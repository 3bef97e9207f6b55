package lc3

import "fmt"

// ErrHalted is returned by Execute when the program has executed a
// HALT trap (vector 0x25). The outer driver is expected to stop its
// fetch loop on this error, exactly as the teacher's cmd/vm does for
// vm.ErrHalted.
var ErrHalted = fmt.Errorf("lc3: halted")

// ErrIllegalTrap is returned by Execute when a TRAP instruction names a
// vector other than the six built-in service routines.
var ErrIllegalTrap = fmt.Errorf("lc3: illegal trap vector")

// Execute decodes and runs a single instruction word against vm. PC
// must already have been advanced past instr by the caller (the fetch
// loop's contract, per spec.md §4.5). Execute returns ErrHalted or
// ErrIllegalTrap for the two fatal conditions defined in spec.md §7,
// and a wrapped console I/O error (such as io.EOF from GETC or IN) when
// a trap routine's read, write or flush fails; every other instruction,
// including the no-op RTI/RES opcodes, returns a nil error.
func (vm *VM) Execute(instr uint16) error {
	switch Decode(instr) {
	case OpADD:
		vm.execADD(instr)
	case OpAND:
		vm.execAND(instr)
	case OpNOT:
		vm.execNOT(instr)
	case OpBR:
		vm.execBR(instr)
	case OpJMP:
		vm.execJMP(instr)
	case OpJSR:
		vm.execJSR(instr)
	case OpLD:
		vm.execLD(instr)
	case OpLDI:
		vm.execLDI(instr)
	case OpLDR:
		vm.execLDR(instr)
	case OpLEA:
		vm.execLEA(instr)
	case OpST:
		vm.execST(instr)
	case OpSTI:
		vm.execSTI(instr)
	case OpSTR:
		vm.execSTR(instr)
	case OpTRAP:
		return vm.execTRAP(instr)
	case OpRTI, OpRES:
		// unsupported; treated as no-ops per spec.md §4.4/§9
	}
	return nil
}

func (vm *VM) execADD(instr uint16) {
	dr := (instr >> 9) & 0x7
	sr1 := (instr >> 6) & 0x7
	var val uint16
	if (instr>>5)&0x1 == 1 {
		imm := SignExtend(instr&0x1F, 5)
		val = vm.Reg.Get(sr1) + imm
	} else {
		sr2 := instr & 0x7
		val = vm.Reg.Get(sr1) + vm.Reg.Get(sr2)
	}
	vm.Reg.Set(dr, val)
	vm.Reg.SetCC(dr)
}

func (vm *VM) execAND(instr uint16) {
	dr := (instr >> 9) & 0x7
	sr1 := (instr >> 6) & 0x7
	var val uint16
	if (instr>>5)&0x1 == 1 {
		imm := SignExtend(instr&0x1F, 5)
		val = vm.Reg.Get(sr1) & imm
	} else {
		sr2 := instr & 0x7
		val = vm.Reg.Get(sr1) & vm.Reg.Get(sr2)
	}
	vm.Reg.Set(dr, val)
	vm.Reg.SetCC(dr)
}

func (vm *VM) execNOT(instr uint16) {
	dr := (instr >> 9) & 0x7
	sr := (instr >> 6) & 0x7
	vm.Reg.Set(dr, ^vm.Reg.Get(sr))
	vm.Reg.SetCC(dr)
}

func (vm *VM) execBR(instr uint16) {
	nzp := (instr >> 9) & 0x7
	if nzp&vm.Reg.Cond() != 0 {
		offset := SignExtend(instr&0x1FF, 9)
		vm.Reg.SetPC(vm.Reg.PC() + offset)
	}
}

func (vm *VM) execJMP(instr uint16) {
	base := (instr >> 6) & 0x7
	vm.Reg.SetPC(vm.Reg.Get(base))
}

func (vm *VM) execJSR(instr uint16) {
	base := (instr >> 6) & 0x7
	long := (instr >> 11) & 0x1

	// R7 must be written before PC so that JSRR R7 reads the pre-call
	// PC as its jump target (spec.md §9, property 4 in spec.md §8).
	vm.Reg.Set(7, vm.Reg.PC())

	if long != 0 {
		offset := SignExtend(instr&0x7FF, 11)
		vm.Reg.SetPC(vm.Reg.PC() + offset)
	} else {
		vm.Reg.SetPC(vm.Reg.Get(base))
	}
}

func (vm *VM) execLD(instr uint16) {
	dr := (instr >> 9) & 0x7
	offset := SignExtend(instr&0x1FF, 9)
	addr := vm.Reg.PC() + offset
	vm.Reg.Set(dr, vm.Mem.Read(addr))
	vm.Reg.SetCC(dr)
}

func (vm *VM) execLDI(instr uint16) {
	dr := (instr >> 9) & 0x7
	offset := SignExtend(instr&0x1FF, 9)
	indirect := vm.Mem.Read(vm.Reg.PC() + offset)
	vm.Reg.Set(dr, vm.Mem.Read(indirect))
	vm.Reg.SetCC(dr)
}

func (vm *VM) execLDR(instr uint16) {
	dr := (instr >> 9) & 0x7
	base := (instr >> 6) & 0x7
	offset := SignExtend(instr&0x3F, 6)
	addr := vm.Reg.Get(base) + offset
	vm.Reg.Set(dr, vm.Mem.Read(addr))
	vm.Reg.SetCC(dr)
}

func (vm *VM) execLEA(instr uint16) {
	dr := (instr >> 9) & 0x7
	offset := SignExtend(instr&0x1FF, 9)
	vm.Reg.Set(dr, vm.Reg.PC()+offset)
	// CC update on LEA is a source/1st-edition behavior the 2nd
	// edition ISA removed; retained here for compatibility, per
	// spec.md §9.
	vm.Reg.SetCC(dr)
}

func (vm *VM) execST(instr uint16) {
	sr := (instr >> 9) & 0x7
	offset := SignExtend(instr&0x1FF, 9)
	addr := vm.Reg.PC() + offset
	vm.Mem.Write(addr, vm.Reg.Get(sr))
}

func (vm *VM) execSTI(instr uint16) {
	sr := (instr >> 9) & 0x7
	offset := SignExtend(instr&0x1FF, 9)
	indirect := vm.Mem.Read(vm.Reg.PC() + offset)
	vm.Mem.Write(indirect, vm.Reg.Get(sr))
}

func (vm *VM) execSTR(instr uint16) {
	sr := (instr >> 9) & 0x7
	base := (instr >> 6) & 0x7
	offset := SignExtend(instr&0x3F, 6)
	addr := vm.Reg.Get(base) + offset
	vm.Mem.Write(addr, vm.Reg.Get(sr))
}
