package transfer

import (
	"fmt"
	"io"
)

// ErrSeekPastWindow is returned when a seek on a [WindowedReader] would land
// beyond the window's end.
var ErrSeekPastWindow = fmt.Errorf("attempted to seek past end of file window")

// WindowedReader exposes the absolute byte range [start, end) of an
// underlying random-access stream as an independent io.ReadSeeker.
//
// It exists so a single open file can be handed to per-chunk operations: each
// chunk gets its own window and cursor, and one chunk's reads never disturb
// another's, as long as windows are not read concurrently over the same
// underlying handle.
//
// The adapter mediates reads only; it deliberately does not forward writes or
// any other members of the underlying stream. Seeking the underlying stream
// directly while a window is in use desynchronises the window's cursor.
type WindowedReader struct {
	src   io.ReadSeeker
	start int64
	end   int64
	pos   int64 // absolute position on src
}

// NewWindowedReader positions src at start and returns a reader confined to
// [start, end). The underlying stream's position prior to construction is
// irrelevant. end must not precede start.
func NewWindowedReader(src io.ReadSeeker, start, end int64) (*WindowedReader, error) {
	if end < start {
		return nil, fmt.Errorf("window end (%d) before start (%d)", end, start)
	}
	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to window start: %w", err)
	}
	return &WindowedReader{src: src, start: start, end: end, pos: start}, nil
}

// Read fills p with at most min(len(p), end-pos) bytes. At the window end it
// returns 0, io.EOF rather than an error: the window behaves like a complete
// file of length end-start.
func (w *WindowedReader) Read(p []byte) (int, error) {
	remaining := w.end - w.pos
	if remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := w.src.Read(p)
	w.pos += int64(n)
	if err == io.EOF && w.pos < w.end {
		// Underlying stream ended before the window did.
		return n, io.ErrUnexpectedEOF
	}
	if err == io.EOF {
		err = nil
	}
	return n, err
}

// Seek interprets offset relative to the window: io.SeekStart is the window
// start, io.SeekEnd is the window end (not the underlying stream's end).
// A resulting position beyond the window end fails with ErrSeekPastWindow.
// The returned position is window-relative.
func (w *WindowedReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = w.start + offset
	case io.SeekCurrent:
		abs = w.pos + offset
	case io.SeekEnd:
		abs = w.end + offset
	default:
		return 0, fmt.Errorf("unknown seek whence: %d", whence)
	}

	if abs > w.end {
		return 0, fmt.Errorf("%w: offset %d whence %d", ErrSeekPastWindow, offset, whence)
	}
	if abs < w.start {
		return 0, fmt.Errorf("seek before window start: offset %d whence %d", offset, whence)
	}

	if _, err := w.src.Seek(abs, io.SeekStart); err != nil {
		return 0, err
	}
	w.pos = abs
	return abs - w.start, nil
}

// Tell returns the current window-relative position.
func (w *WindowedReader) Tell() int64 {
	return w.pos - w.start
}

// Size returns the window length in bytes.
func (w *WindowedReader) Size() int64 {
	return w.end - w.start
}
