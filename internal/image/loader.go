// Package image loads LC-3 object images into VM memory. It is the
// external collaborator spec.md §1 explicitly places out of scope for
// the instruction-execution engine itself; it exists only so
// cmd/lc3vm has a way to populate memory, the same supporting role
// the teacher's pkg/vm.LoadBytecode plays for cmd/vm.
package image

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-lc3/lc3vm/internal/lc3"
)

// Load reads a big-endian stream of 16-bit words from r: the first
// word is the origin address, each subsequent word is stored starting
// at origin. It returns the origin so the caller can set PC. Load does
// not interpret or validate instruction encodings; that is Decode's
// job once execution starts.
func Load(r io.Reader, mem *lc3.Memory) (origin uint16, err error) {
	if err := binary.Read(r, binary.BigEndian, &origin); err != nil {
		return 0, fmt.Errorf("image: reading origin: %w", err)
	}
	addr := origin
	for {
		var word uint16
		if err := binary.Read(r, binary.BigEndian, &word); err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("image: reading word at 0x%04x: %w", addr, err)
		}
		mem.LoadWord(addr, word)
		addr++
	}
	return origin, nil
}
