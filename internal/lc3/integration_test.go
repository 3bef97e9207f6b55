package lc3_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-lc3/lc3vm/internal/lc3"
)

// runToHalt reproduces the outer driver's contract from spec.md §2: read
// the word at PC, advance PC, dispatch, repeat until the program halts
// or a fatal error occurs.
func runToHalt(vm *lc3.VM) error {
	for {
		instr := vm.Fetch()
		if err := vm.Execute(instr); err != nil {
			return err
		}
	}
}

var _ = Describe("end-to-end program execution", func() {
	var out *strings.Builder

	newVM := func(origin uint16, input string) *lc3.VM {
		out = &strings.Builder{}
		console := lc3.NewConsole(strings.NewReader(input), out)
		return lc3.New(origin, console)
	}

	It("runs LEA, PUTS, then HALT and produces the expected output", func() {
		vm := newVM(0x3000, "")
		program := map[uint16]uint16{
			0x3000: 0xE002, // LEA R0, #2 -> points at 0x3003
			0x3001: 0xF022, // TRAP PUTS
			0x3002: 0xF025, // TRAP HALT
			0x3003: uint16('h'),
			0x3004: uint16('i'),
			0x3005: 0x0000,
		}
		for addr, word := range program {
			vm.Mem.LoadWord(addr, word)
		}

		err := runToHalt(vm)
		Expect(errors.Is(err, lc3.ErrHalted)).To(BeTrue())
		Expect(out.String()).To(Equal("hiHALT detected\n"))
	})

	It("reads a character with GETC and echoes it back with OUT", func() {
		vm := newVM(0x3000, "q")
		program := map[uint16]uint16{
			0x3000: 0xF020, // TRAP GETC -> R0
			0x3001: 0xF021, // TRAP OUT
			0x3002: 0xF025, // TRAP HALT
		}
		for addr, word := range program {
			vm.Mem.LoadWord(addr, word)
		}

		err := runToHalt(vm)
		Expect(errors.Is(err, lc3.ErrHalted)).To(BeTrue())
		Expect(out.String()).To(Equal("qHALT detected\n"))
	})

	It("terminates on an illegal trap vector without executing past it", func() {
		vm := newVM(0x3000, "")
		vm.Mem.LoadWord(0x3000, 0xF0AA) // TRAP 0xAA, not a built-in vector
		vm.Mem.LoadWord(0x3001, 0xF025) // would HALT if reached

		err := runToHalt(vm)
		Expect(errors.Is(err, lc3.ErrHalted)).To(BeFalse())
		Expect(errors.Is(err, lc3.ErrIllegalTrap)).To(BeTrue())
	})

	It("round-trips a value through ST and LD", func() {
		vm := newVM(0x3000, "")
		program := map[uint16]uint16{
			0x3000: 0x54A0, // AND R2, R2, #0 -> R2 = 0, deterministically
			0x3001: 0x14A7, // ADD R2, R2, #7 -> R2 = 7
			0x3002: 0x34FD, // ST R2, #0x0FD  -> mem[0x3100]
			0x3003: 0x26FC, // LD R3, #0x0FC  -> mem[0x3100]
			0x3004: 0xF025, // TRAP HALT
		}
		for addr, word := range program {
			vm.Mem.LoadWord(addr, word)
		}

		err := runToHalt(vm)
		Expect(errors.Is(err, lc3.ErrHalted)).To(BeTrue())
		Expect(vm.Reg.Get(3)).To(Equal(uint16(7)))
	})
})
