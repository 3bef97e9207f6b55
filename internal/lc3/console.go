package lc3

import (
	"bufio"
	"io"
)

// Console is the byte-oriented input/output channel the VM's memory-
// mapped keyboard registers and trap routines read and write.
//
// The teacher's SerialTTY polls a net.Conn non-blockingly by setting a
// short read/write deadline on every poll. Console adapts that idea to
// a plain io.Reader (typically stdin, which offers no deadlines): a
// background goroutine pumps bytes from the reader into a small
// buffered channel, and Poll drains that channel without blocking.
type Console struct {
	out *bufio.Writer
	in  chan byte
}

// NewConsole starts the input pump and wraps out for buffered writes.
// The caller must call Flush after any trap that the spec requires to
// flush (PUTS, PUTSP, IN, HALT).
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{
		out: bufio.NewWriter(out),
		in:  make(chan byte, 1),
	}
	go c.pump(in)
	return c
}

// pump reads bytes one at a time from in and forwards them to c.in. On
// read error (typically io.EOF when the input stream closes) it closes
// c.in so a blocked ReadByte wakes up with io.EOF instead of hanging.
func (c *Console) pump(in io.Reader) {
	defer close(c.in)
	r := bufio.NewReader(in)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		c.in <- b
	}
}

// Poll reports whether a byte is currently available and, if so,
// consumes and returns it. Poll never blocks: this is what backs the
// KBSR/KBDR non-blocking poll semantics.
func (c *Console) Poll() (byte, bool) {
	select {
	case b, ok := <-c.in:
		return b, ok
	default:
		return 0, false
	}
}

// ReadByte blocks until a byte is available, backing GETC and IN.
func (c *Console) ReadByte() (byte, error) {
	b, ok := <-c.in
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// WriteByte writes a single byte to the output channel.
func (c *Console) WriteByte(b byte) error {
	return c.out.WriteByte(b)
}

// WriteString writes s to the output channel.
func (c *Console) WriteString(s string) error {
	_, err := c.out.WriteString(s)
	return err
}

// Flush flushes buffered output. Traps that the spec requires to
// flush call this before returning.
func (c *Console) Flush() error {
	return c.out.Flush()
}
