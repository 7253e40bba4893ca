// Package term emits the handful of ANSI/xterm sequences memfill needs to
// repaint a single line in place.
package term

import (
	"strconv"
)

// Pre-encoded sequences.
var (
	csi             = []byte("\x1b[")
	escSavePos      = []byte("\x1b7") // DECSC
	escRestorePos   = []byte("\x1b8") // DECRC
	csiClearFromCur = []byte("\x1b[J")
)

// Command is a single terminal instruction that can be queued on a Terminal.
type Command interface {
	// AppendANSI appends the command's escape sequence (or text) to dst.
	AppendANSI(dst []byte) []byte
	String() string
}

// MoveToColumn moves the cursor to the given 0-indexed column of the
// current line (CHA).
type MoveToColumn uint16

func (c MoveToColumn) AppendANSI(dst []byte) []byte {
	dst = append(dst, csi...)
	dst = strconv.AppendUint(dst, uint64(c)+1, 10)
	return append(dst, 'G')
}

func (c MoveToColumn) String() string { return "MoveToColumn(" + strconv.Itoa(int(c)) + ")" }

type savePosition struct{}

func (savePosition) AppendANSI(dst []byte) []byte { return append(dst, escSavePos...) }
func (savePosition) String() string               { return "SavePosition" }

type restorePosition struct{}

func (restorePosition) AppendANSI(dst []byte) []byte { return append(dst, escRestorePos...) }
func (restorePosition) String() string               { return "RestorePosition" }

type clearFromCursorDown struct{}

func (clearFromCursorDown) AppendANSI(dst []byte) []byte { return append(dst, csiClearFromCur...) }
func (clearFromCursorDown) String() string               { return "ClearFromCursorDown" }

var (
	// SavePosition remembers the cursor position.
	SavePosition Command = savePosition{}
	// RestorePosition returns the cursor to the last saved position.
	RestorePosition Command = restorePosition{}
	// ClearFromCursorDown erases from the cursor to the end of the screen,
	// so wrapped remains of a longer previous line go too.
	ClearFromCursorDown Command = clearFromCursorDown{}
)

// Print writes text verbatim.
type Print string

func (p Print) AppendANSI(dst []byte) []byte { return append(dst, string(p)...) }
func (p Print) String() string               { return "Print(" + strconv.Quote(string(p)) + ")" }
