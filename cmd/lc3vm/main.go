// Command lc3vm loads an LC-3 object image and runs it to completion.
//
// The fetch/decode/dispatch loop below is the "outer driver" spec.md
// §2 treats as an external collaborator: it owns reading the program
// counter, advancing it, and invoking internal/lc3.VM.Execute, the
// same division of labor the teacher's cmd/vm/main.go has with
// pkg/vm.VM.Fetch/Execute.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/go-lc3/lc3vm/internal/image"
	"github.com/go-lc3/lc3vm/internal/lc3"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)

	var (
		filename string
		verbose  bool
		debug    bool
		rawInput bool
	)

	root := &cobra.Command{
		Use:   "lc3vm",
		Short: "Run an LC-3 object image to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			if filename == "" {
				return errors.New("usage: lc3vm -f <object-image-file>")
			}
			return run(filename, verbose, debug, rawInput)
		},
	}
	root.Flags().StringVarP(&filename, "file", "f", "", "object image file to run")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "trace each instruction before executing it")
	root.Flags().BoolVarP(&debug, "debug", "d", false, "pause for Enter before each instruction")
	root.Flags().BoolVar(&rawInput, "raw", true, "put the controlling terminal into raw mode for GETC/IN")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(filename string, verbose, debug, rawInput bool) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()

	console := lc3.NewConsole(os.Stdin, os.Stdout)
	vm := lc3.New(0x3000, console)

	origin, err := image.Load(fp, vm.Mem)
	if err != nil {
		return err
	}
	vm.Reg.SetPC(origin)

	restore := maybeRaw(rawInput)
	defer restore()

	for {
		pc := vm.Reg.PC()
		instr := vm.Fetch()
		if verbose {
			log.Printf("lc3vm: pc=0x%04x instr=0x%04x %s", pc, instr, lc3.Disassemble(instr))
		}
		if debug {
			log.Printf("lc3vm: paused...")
			fmt.Scanln()
		}
		if err := vm.Execute(instr); err != nil {
			if errors.Is(err, lc3.ErrHalted) {
				// spec.md §4.6/§6/§7, scenario S6: HALT exits the
				// process with a non-zero status, matching the
				// source's process::exit(1).
				restore()
				os.Exit(1)
			}
			if errors.Is(err, lc3.ErrIllegalTrap) {
				log.Print(err)
				restore()
				os.Exit(1)
			}
			return err
		}
	}
}

// maybeRaw puts stdin into raw mode, per spec.md §9 ("the external
// driver must configure the terminal accordingly before entering the
// fetch loop and restore it on exit"), and returns a restore func that
// is a no-op when raw mode wasn't requested or stdin isn't a terminal.
func maybeRaw(enabled bool) func() {
	if !enabled {
		return func() {}
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}
	}
	return func() { _ = term.Restore(fd, old) }
}
