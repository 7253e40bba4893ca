// Package termtest provides a term.Terminal that records what it is asked
// to do, for use in tests.
package termtest

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ishworgurung/memfill/term"
)

// Flush is the entry a Recorder logs for a Flush call.
const Flush = "Flush"

// ErrInjected is returned by a Recorder at its configured failure point.
var ErrInjected = errors.New("injected terminal failure")

// Recorder logs every queued command (by its String form) and every flush.
// The text of each Print also lands in Printed.
//
// FailOn, when set, makes Queue/Flush fail once for an entry whose log name
// starts with it, e.g. "SavePosition" or "Flush", after letting Skip such
// entries through. RejectNewline makes
// Queue fail for any Print containing '\n'.
type Recorder struct {
	Log           []string
	Printed       []string
	FailOn        string
	Skip          int
	RejectNewline bool
	seen          int
	failed        bool
}

func (r *Recorder) Queue(cmd term.Command) error {
	name := cmd.String()
	p, isPrint := cmd.(term.Print)
	if isPrint && r.RejectNewline && strings.Contains(string(p), "\n") {
		return errors.Errorf("newline in status payload %q", string(p))
	}
	if err := r.maybeFail(name); err != nil {
		return err
	}
	r.Log = append(r.Log, name)
	if isPrint {
		r.Printed = append(r.Printed, string(p))
	}
	return nil
}

func (r *Recorder) Flush() error {
	if err := r.maybeFail(Flush); err != nil {
		return err
	}
	r.Log = append(r.Log, Flush)
	return nil
}

func (r *Recorder) maybeFail(name string) error {
	if r.FailOn == "" || r.failed || !strings.HasPrefix(name, r.FailOn) {
		return nil
	}
	if r.seen++; r.seen <= r.Skip {
		return nil
	}
	r.failed = true
	return ErrInjected
}
