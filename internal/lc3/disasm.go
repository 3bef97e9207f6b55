package lc3

import "fmt"

// Disassemble renders instr as LC-3 assembly text, for use by
// cmd/lc3vm's instruction tracing. It has no bearing on execution
// semantics; it is the tracing counterpart of the teacher's
// pkg/vm.Disassemble, generalized from RiSC-32's opcode set to LC-3's.
func Disassemble(instr uint16) string {
	dr := (instr >> 9) & 0x7
	sr1 := (instr >> 6) & 0x7
	sr2 := instr & 0x7
	imm5 := int16(SignExtend(instr&0x1F, 5))
	off6 := int16(SignExtend(instr&0x3F, 6))
	off9 := int16(SignExtend(instr&0x1FF, 9))
	off11 := int16(SignExtend(instr&0x7FF, 11))

	switch Decode(instr) {
	case OpADD:
		if (instr>>5)&0x1 == 1 {
			return fmt.Sprintf("add r%d r%d %d", dr, sr1, imm5)
		}
		return fmt.Sprintf("add r%d r%d r%d", dr, sr1, sr2)
	case OpAND:
		if (instr>>5)&0x1 == 1 {
			return fmt.Sprintf("and r%d r%d %d", dr, sr1, imm5)
		}
		return fmt.Sprintf("and r%d r%d r%d", dr, sr1, sr2)
	case OpNOT:
		return fmt.Sprintf("not r%d r%d", dr, sr1)
	case OpBR:
		n, z, p := (instr>>11)&1, (instr>>10)&1, (instr>>9)&1
		return fmt.Sprintf("br%s%s%s %d",
			flagLetter(n, "n"), flagLetter(z, "z"), flagLetter(p, "p"), off9)
	case OpJMP:
		if sr1 == 7 {
			return "ret"
		}
		return fmt.Sprintf("jmp r%d", sr1)
	case OpJSR:
		if (instr>>11)&0x1 == 1 {
			return fmt.Sprintf("jsr %d", off11)
		}
		return fmt.Sprintf("jsrr r%d", sr1)
	case OpLD:
		return fmt.Sprintf("ld r%d %d", dr, off9)
	case OpLDI:
		return fmt.Sprintf("ldi r%d %d", dr, off9)
	case OpLDR:
		return fmt.Sprintf("ldr r%d r%d %d", dr, sr1, off6)
	case OpLEA:
		return fmt.Sprintf("lea r%d %d", dr, off9)
	case OpST:
		return fmt.Sprintf("st r%d %d", dr, off9)
	case OpSTI:
		return fmt.Sprintf("sti r%d %d", dr, off9)
	case OpSTR:
		return fmt.Sprintf("str r%d r%d %d", dr, sr1, off6)
	case OpTRAP:
		return fmt.Sprintf("trap 0x%02x", instr&0xFF)
	case OpRTI:
		return "rti (unsupported, no-op)"
	case OpRES:
		return "res (unsupported, no-op)"
	default:
		return fmt.Sprintf("<unknown instruction: 0x%04x>", instr)
	}
}

func flagLetter(bit uint16, letter string) string {
	if bit != 0 {
		return letter
	}
	return ""
}
