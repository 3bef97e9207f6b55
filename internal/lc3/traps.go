package lc3

import "fmt"

// The six built-in trap vectors, keyed by the low byte of a TRAP
// instruction.
const (
	TrapGETC  = uint16(0x20)
	TrapOUT   = uint16(0x21)
	TrapPUTS  = uint16(0x22)
	TrapIN    = uint16(0x23)
	TrapPUTSP = uint16(0x24)
	TrapHALT  = uint16(0x25)
)

// execTRAP dispatches TRAP instr to the trap service routine named by
// its low byte. Built-in traps do not save R7 (spec.md §4.6: they
// never return to user code by convention, HALT terminates the
// process instead).
func (vm *VM) execTRAP(instr uint16) error {
	switch instr & 0xFF {
	case TrapGETC:
		return vm.trapGETC()
	case TrapOUT:
		return vm.trapOUT()
	case TrapPUTS:
		return vm.trapPUTS()
	case TrapIN:
		return vm.trapIN()
	case TrapPUTSP:
		return vm.trapPUTSP()
	case TrapHALT:
		return vm.trapHALT()
	default:
		return fmt.Errorf("%w: 0x%02x", ErrIllegalTrap, instr&0xFF)
	}
}

// trapGETC reads exactly one byte from the console, blocking, and
// zero-extends it into R0. No echo, no CC update.
func (vm *VM) trapGETC() error {
	b, err := vm.Console.ReadByte()
	if err != nil {
		return fmt.Errorf("lc3: GETC: %w", err)
	}
	vm.Reg.Set(0, uint16(b))
	return nil
}

// trapOUT writes the low 8 bits of R0 to the console as one byte. OUT
// does not flush; output is flushed by the next trap that does (or by
// HALT).
func (vm *VM) trapOUT() error {
	if err := vm.Console.WriteByte(byte(vm.Reg.Get(0))); err != nil {
		return fmt.Errorf("lc3: OUT: %w", err)
	}
	return nil
}

// trapPUTS writes one byte per memory word, starting at R0, until a
// zero word is reached (not emitted), then flushes.
func (vm *VM) trapPUTS() error {
	addr := vm.Reg.Get(0)
	for {
		w := vm.Mem.Read(addr)
		if w == 0 {
			break
		}
		if err := vm.Console.WriteByte(byte(w)); err != nil {
			return fmt.Errorf("lc3: PUTS: %w", err)
		}
		addr++
	}
	return vm.Console.Flush()
}

// trapIN prompts, flushes, then reads one byte into R0.
func (vm *VM) trapIN() error {
	if err := vm.Console.WriteString("Enter a  character : "); err != nil {
		return fmt.Errorf("lc3: IN: %w", err)
	}
	if err := vm.Console.Flush(); err != nil {
		return fmt.Errorf("lc3: IN: %w", err)
	}
	b, err := vm.Console.ReadByte()
	if err != nil {
		return fmt.Errorf("lc3: IN: %w", err)
	}
	vm.Reg.Set(0, uint16(b))
	return nil
}

// trapPUTSP writes two packed bytes per memory word (low byte first,
// then high byte if non-zero), starting at R0, until a zero word.
func (vm *VM) trapPUTSP() error {
	addr := vm.Reg.Get(0)
	for {
		w := vm.Mem.Read(addr)
		if w == 0 {
			break
		}
		lo := byte(w & 0xFF)
		if err := vm.Console.WriteByte(lo); err != nil {
			return fmt.Errorf("lc3: PUTSP: %w", err)
		}
		if hi := byte(w >> 8); hi != 0 {
			if err := vm.Console.WriteByte(hi); err != nil {
				return fmt.Errorf("lc3: PUTSP: %w", err)
			}
		}
		addr++
	}
	return vm.Console.Flush()
}

// trapHALT prints the halt banner, flushes, and reports ErrHalted so
// the driver terminates the process with a non-zero status.
func (vm *VM) trapHALT() error {
	if err := vm.Console.WriteString("HALT detected\n"); err != nil {
		return fmt.Errorf("lc3: HALT: %w", err)
	}
	if err := vm.Console.Flush(); err != nil {
		return fmt.Errorf("lc3: HALT: %w", err)
	}
	return ErrHalted
}
