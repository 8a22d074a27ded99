// Command i8080run loads an Intel 8080 program image into the core and
// either runs it to completion or dumps its register state after a
// fixed number of steps. It patches the CP/M BDOS entry point (address
// 5) with a trap to a minimal console stub (function 2 = print
// character in E, function 9 = print '$'-terminated string at DE) so
// the classic 8080 exerciser suites (CPUTEST, 8080PRE, 8080EXM), which
// are written to run under CP/M, can run under this core instead and
// print their "CPU IS OPERATIONAL" banners.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmchacon/8080/cpu"
	"github.com/jmchacon/8080/irq"
	"github.com/jmchacon/8080/loader"
	"github.com/jmchacon/8080/memory"
	"github.com/jmchacon/8080/port"
)

// bdosStubPort is the port number OUT-ed to by the patched BDOS trampoline.
const bdosStubPort = 0x00

func main() {
	rootCmd := &cobra.Command{
		Use:   "i8080run",
		Short: "Run or inspect programs on an emulated Intel 8080",
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newDumpCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("i8080run: %v", err)
	}
}

func newRunCmd() *cobra.Command {
	var originStr string
	var hexFormat bool
	var maxSteps int
	var interruptEvery int
	var interruptRST int

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load an image and run it to completion or HLT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := loader.ParseOrigin(originStr)
			if err != nil {
				return err
			}
			c, err := loadImage(args[0], origin, hexFormat)
			if err != nil {
				return err
			}

			// timer is a periodic irq.Source: every interruptEvery steps
			// the host raises it, the way a real 8080 system's clock
			// peripheral would drive the interrupt line at a fixed rate.
			var timer *irq.Line
			if interruptEvery > 0 {
				timer = &irq.Line{Op: irq.RST(uint8(interruptRST))}
			}

			steps := 0
			for !c.IsHalted() {
				if timer != nil && steps > 0 && steps%interruptEvery == 0 {
					timer.Active = true
					c.RequestInterruptFrom(timer)
				}
				c.Step()
				steps++
				if maxSteps > 0 && steps >= maxSteps {
					fmt.Fprintf(os.Stderr, "i8080run: stopped after %d steps without HLT\n", steps)
					break
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&originStr, "origin", "0x100", "load address for the image")
	cmd.Flags().BoolVar(&hexFormat, "hex", false, "treat the image as Intel HEX instead of raw binary")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 100_000_000, "abort after this many steps if HLT is never reached (0 = unbounded)")
	cmd.Flags().IntVar(&interruptEvery, "interrupt-every", 0, "raise a timer interrupt every N steps (0 = disabled)")
	cmd.Flags().IntVar(&interruptRST, "interrupt-rst", 7, "RST n vector (0-7) the timer interrupt raises")
	return cmd
}

func newDumpCmd() *cobra.Command {
	var originStr string
	var hexFormat bool
	var steps int

	cmd := &cobra.Command{
		Use:   "dump <image>",
		Short: "Load an image, run a fixed number of steps, and print register state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin, err := loader.ParseOrigin(originStr)
			if err != nil {
				return err
			}
			c, err := loadImage(args[0], origin, hexFormat)
			if err != nil {
				return err
			}
			for i := 0; i < steps && !c.IsHalted(); i++ {
				c.Step()
			}
			printRegisters(c)
			return nil
		},
	}
	cmd.Flags().StringVar(&originStr, "origin", "0x100", "load address for the image")
	cmd.Flags().BoolVar(&hexFormat, "hex", false, "treat the image as Intel HEX instead of raw binary")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of instructions to execute before dumping")
	return cmd
}

// cpmConsole services the BDOS stub's OUT 0 trap. It reads the CPU's
// registers at call time rather than being handed arguments directly,
// since OUT carries no operands beyond the port number and accumulator.
type cpmConsole struct {
	cpu *cpu.CPU
	w   *bufio.Writer
}

// Out implements port.Writer.
func (c *cpmConsole) Out(p uint8, _ uint8) {
	if p != bdosStubPort {
		return
	}
	switch c.cpu.C {
	case 2:
		c.w.WriteByte(c.cpu.E)
	case 9:
		addr := c.cpu.DE()
		for {
			b := c.cpu.Peek(addr)
			if b == '$' {
				break
			}
			c.w.WriteByte(b)
			addr++
		}
	}
	c.w.Flush()
}

// loadImage reads the named file, decodes it per format, binds a fresh
// CPU to a fresh 64KiB RAM with the CP/M BDOS console stub wired at
// address 5, and sets PC to origin.
func loadImage(path string, origin uint16, hexFormat bool) (*cpu.CPU, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("i8080run: can't open %s: %w", path, err)
	}

	ram := memory.NewRAM()
	console := &cpmConsole{w: bufio.NewWriter(os.Stdout)}
	c := cpu.New(nil, port.WriterFunc(console.Out), ram)
	console.cpu = c

	var segs []loader.Segment
	if hexFormat {
		segs, err = loader.IntelHex(splitLines(raw))
		if err != nil {
			return nil, err
		}
	} else {
		segs = loader.RawBinary(origin, raw)
	}
	for _, s := range segs {
		if err := c.Load(s.Origin, s.Data); err != nil {
			return nil, err
		}
	}
	c.PC = origin

	// CP/M's BDOS entry point: OUT 0 (traps to cpmConsole.Out); RET.
	// CP/M's warm-boot entry point at 0: HLT, so a RET to 0 stops Step.
	if err := c.Load(0x0000, []byte{0x76}); err != nil {
		return nil, err
	}
	if err := c.Load(0x0005, []byte{0xD3, bdosStubPort, 0xC9}); err != nil {
		return nil, err
	}
	return c, nil
}

func splitLines(raw []byte) []string {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines
}

func printRegisters(c *cpu.CPU) {
	fmt.Printf("PC=%04X SP=%04X\n", c.PC, c.SP)
	fmt.Printf("A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X\n",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L)
	fmt.Printf("BC=%04X DE=%04X HL=%04X halted=%v ime=%v\n",
		c.BC(), c.DE(), c.HL(), c.IsHalted(), c.InterruptsEnabled())
}
