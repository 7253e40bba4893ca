package term

import (
	"bufio"
	"io"
	"os"

	xterm "golang.org/x/term"
)

// Terminal queues commands and makes them visible with a single Flush.
type Terminal interface {
	Queue(cmd Command) error
	Flush() error
}

// Writer is a Terminal over any io.Writer. Queued commands are encoded into
// an in-memory buffer; nothing reaches the output before Flush unless the
// buffer fills up.
type Writer struct {
	w       *bufio.Writer
	scratch []byte
}

// NewWriter returns a Writer batching into out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		w:       bufio.NewWriterSize(out, 4096),
		scratch: make([]byte, 0, 64),
	}
}

func (t *Writer) Queue(cmd Command) error {
	t.scratch = cmd.AppendANSI(t.scratch[:0])
	_, err := t.w.Write(t.scratch)
	return err
}

func (t *Writer) Flush() error {
	return t.w.Flush()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}
