package transfer

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowedReaderConfinesReads(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789abcdef"))

	w, err := NewWindowedReader(src, 4, 10)
	require.NoError(t, err)

	got, err := io.ReadAll(w)
	require.NoError(t, err)
	assert.Equal(t, "456789", string(got))
	assert.Equal(t, int64(6), w.Size())
	assert.Equal(t, int64(6), w.Tell())

	// Reading past the window end keeps returning EOF.
	n, err := w.Read(make([]byte, 1))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestWindowedReaderSeek(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789abcdef"))

	w, err := NewWindowedReader(src, 4, 10)
	require.NoError(t, err)

	pos, err := w.Seek(2, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pos, "returned position is window-relative")

	buf := make([]byte, 2)
	_, err = io.ReadFull(w, buf)
	require.NoError(t, err)
	assert.Equal(t, "67", string(buf))

	pos, err = w.Seek(-1, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(3), pos)

	pos, err = w.Seek(-2, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos, "SeekEnd is the window end, not the stream end")

	got, err := io.ReadAll(w)
	require.NoError(t, err)
	assert.Equal(t, "89", string(got))
}

func TestWindowedReaderSeekBounds(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789abcdef"))

	w, err := NewWindowedReader(src, 4, 10)
	require.NoError(t, err)

	_, err = w.Seek(7, io.SeekStart)
	assert.ErrorIs(t, err, ErrSeekPastWindow)

	_, err = w.Seek(1, io.SeekEnd)
	assert.ErrorIs(t, err, ErrSeekPastWindow)

	_, err = w.Seek(-1, io.SeekStart)
	assert.Error(t, err)

	// Seeking exactly to the window end is allowed; it is the EOF position.
	pos, err := w.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(6), pos)
}

func TestWindowedReaderEmptyWindow(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))

	w, err := NewWindowedReader(src, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w.Size())

	n, err := w.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestWindowedReaderRejectsInvertedWindow(t *testing.T) {
	_, err := NewWindowedReader(bytes.NewReader(nil), 10, 5)
	assert.Error(t, err)
}

func TestWindowedReaderShortSource(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))

	w, err := NewWindowedReader(src, 8, 16)
	require.NoError(t, err)

	_, err = io.ReadAll(w)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestWindowedReaderPerChunkWindows(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	src := bytes.NewReader(data)

	// One window per planned chunk, read sequentially, reassembles the
	// original: the access pattern multipart uploads rely on.
	var got []byte
	for _, r := range Plan(int64(len(data)), 10) {
		w, err := NewWindowedReader(src, r.Start, r.End)
		require.NoError(t, err)

		part, err := io.ReadAll(w)
		require.NoError(t, err)
		require.Equal(t, r.Len(), int64(len(part)))
		got = append(got, part...)
	}

	assert.Equal(t, data, got)
}
