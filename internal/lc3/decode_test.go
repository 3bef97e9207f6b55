package lc3

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		instr uint16
		want  Opcode
	}{
		{0x0000, OpBR},
		{0x1000, OpADD},
		{0x2000, OpLD},
		{0x3000, OpST},
		{0x4000, OpJSR},
		{0x5000, OpAND},
		{0x6000, OpLDR},
		{0x7000, OpSTR},
		{0x8000, OpRTI},
		{0x9000, OpNOT},
		{0xA000, OpLDI},
		{0xB000, OpSTI},
		{0xC000, OpJMP},
		{0xD000, OpRES},
		{0xE000, OpLEA},
		{0xF000, OpTRAP},
		{0x123F, OpADD}, // low bits must not affect decode
	}
	for _, tc := range tests {
		if got := Decode(tc.instr); got != tc.want {
			t.Errorf("Decode(0x%04x) = %s, want %s", tc.instr, got, tc.want)
		}
	}
}
