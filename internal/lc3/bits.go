// Package lc3 implements the LC-3 instruction-execution engine: the
// register file, memory, decoder, per-opcode semantics, and the
// built-in trap service routines.
package lc3

// SignExtend extends the w-bit field held in the low bits of x to a
// full 16-bit two's-complement value by replicating bit (w-1) into the
// remaining high bits. w must be in [1, 16]; immediate fields in the
// LC-3 ISA are always 5, 6, 9, or 11 bits wide.
func SignExtend(x uint16, w uint) uint16 {
	if (x>>(w-1))&1 != 0 {
		x |= 0xFFFF << w
	}
	return x
}
