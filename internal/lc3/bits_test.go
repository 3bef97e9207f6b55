package lc3

import "testing"

func TestSignExtend(t *testing.T) {
	tests := []struct {
		name string
		x    uint16
		w    uint
		want uint16
	}{
		{"5-bit negative one", 0x1F, 5, 0xFFFF},
		{"5-bit positive fifteen", 0x0F, 5, 0x000F},
		{"5-bit zero", 0x00, 5, 0x0000},
		{"6-bit negative", 0x3F, 6, 0xFFFF},
		{"6-bit positive", 0x1F, 6, 0x001F},
		{"9-bit negative", 0x1FF, 9, 0xFFFF},
		{"9-bit positive", 0x0FF, 9, 0x00FF},
		{"11-bit negative", 0x7FF, 11, 0xFFFF},
		{"11-bit positive", 0x3FF, 11, 0x03FF},
		{"16-bit field is a no-op", 0xBEEF, 16, 0xBEEF},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SignExtend(tc.x, tc.w); got != tc.want {
				t.Errorf("SignExtend(0x%x, %d) = 0x%04x, want 0x%04x", tc.x, tc.w, got, tc.want)
			}
		})
	}
}
