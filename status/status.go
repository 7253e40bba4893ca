// Package status repaints a single "Buffer: N bytes" line in place.
package status

import (
	"fmt"

	"github.com/docker/go-units"

	"github.com/ishworgurung/memfill/cfg"
	"github.com/ishworgurung/memfill/term"
)

// Step names the terminal operation that failed.
type Step string

const (
	StepMove    Step = "move"
	StepSave    Step = "save"
	StepRestore Step = "restore"
	StepClear   Step = "clear"
	StepPrint   Step = "print"
	StepFlush   Step = "flush"
)

var stepDescriptions = map[Step]string{
	StepMove:    "move cursor to column 0",
	StepSave:    "save cursor position",
	StepRestore: "restore cursor position",
	StepClear:   "clear from cursor down",
	StepPrint:   "print status line",
	StepFlush:   "flush terminal",
}

// Error is returned when a terminal instruction or flush could not be
// written.
type Error struct {
	Step Step
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("terminal %s failed: unable to %s: %v", e.Step, stepDescriptions[e.Step], e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Cause() error { return e.Err }

// Renderer owns the terminal and shows one evolving status line.
type Renderer struct {
	t term.Terminal
}

func New(t term.Terminal) *Renderer {
	return &Renderer{t: t}
}

// Init moves the cursor to column 0 and saves that position as the anchor
// every Render returns to.
func (r *Renderer) Init() error {
	if err := r.queue(StepMove, term.MoveToColumn(0)); err != nil {
		return err
	}
	if err := r.queue(StepSave, term.SavePosition); err != nil {
		return err
	}
	return r.flush()
}

// Render repaints the status line for length bytes at the anchor.
func (r *Renderer) Render(length int) error {
	if err := r.queue(StepRestore, term.RestorePosition); err != nil {
		return err
	}
	if err := r.queue(StepClear, term.ClearFromCursorDown); err != nil {
		return err
	}
	if err := r.queue(StepPrint, term.Print(Line(length))); err != nil {
		return err
	}
	return r.flush()
}

func (r *Renderer) queue(step Step, cmd term.Command) error {
	if err := r.t.Queue(cmd); err != nil {
		return &Error{Step: step, Err: err}
	}
	return nil
}

func (r *Renderer) flush() error {
	if err := r.t.Flush(); err != nil {
		return &Error{Step: StepFlush, Err: err}
	}
	return nil
}

// Line is the status text for length bytes, e.g.
// "Buffer: 1048576 bytes (1MiB)".
func Line(length int) string {
	return fmt.Sprintf(cfg.StatusFormat, length, units.BytesSize(float64(length)))
}
