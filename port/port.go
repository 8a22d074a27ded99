// Package port defines the basic interfaces for working with an 8080
// style I/O port bus. Unlike memory, ports are not addressed through the
// same 64KiB space; IN/OUT instructions carry their own 8 bit port number
// and the core simply calls back into the host for the byte that crosses
// the bus.
package port

// Reader services an IN instruction. The port argument is the immediate
// byte following the IN opcode.
type Reader interface {
	In(port uint8) uint8
}

// Writer services an OUT instruction. The port argument is the immediate
// byte following the OUT opcode and data is the accumulator at the time
// of the OUT.
type Writer interface {
	Out(port uint8, data uint8)
}

// ReaderFunc adapts a plain function to the Reader interface.
type ReaderFunc func(port uint8) uint8

// In implements Reader.
func (f ReaderFunc) In(port uint8) uint8 { return f(port) }

// WriterFunc adapts a plain function to the Writer interface.
type WriterFunc func(port uint8, data uint8)

// Out implements Writer.
func (f WriterFunc) Out(port uint8, data uint8) { f(port, data) }
