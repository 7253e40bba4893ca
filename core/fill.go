package core

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ishworgurung/memfill/buffer"
	"github.com/ishworgurung/memfill/status"
	"github.com/ishworgurung/memfill/term"
)

// Fill anchors the status line on t, then grows a buffer served by a until
// something refuses. It always returns the buffer so the caller can tell
// how far it got, together with the error that stopped it.
func Fill(t term.Terminal, a buffer.Allocator, lg zerolog.Logger) (*buffer.Buffer, error) {
	buf := buffer.New(a)
	r := status.New(t)
	if err := r.Init(); err != nil {
		return buf, errors.Wrap(err, "unable to initialise terminal")
	}
	return buf, New(buf, r, lg).Run()
}
