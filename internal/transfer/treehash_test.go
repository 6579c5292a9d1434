package transfer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(n int, b byte) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func hashPair(a, b [sha256.Size]byte) [sha256.Size]byte {
	return sha256.Sum256(append(a[:], b[:]...))
}

func TestTreeHashEmptyInput(t *testing.T) {
	got, err := TreeHash(bytes.NewReader(nil))
	require.NoError(t, err)

	want := sha256.Sum256(nil)
	assert.Equal(t, hex.EncodeToString(want[:]), got)
}

func TestTreeHashSingleBlock(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "short", data: []byte("hello")},
		{name: "exactly one block", data: fill(treeHashBlockSize, 'a')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TreeHash(bytes.NewReader(tt.data))
			require.NoError(t, err)

			// A single leaf is its own root: identical to a plain SHA-256.
			want := sha256.Sum256(tt.data)
			assert.Equal(t, hex.EncodeToString(want[:]), got)
		})
	}
}

func TestTreeHashTwoBlocks(t *testing.T) {
	data := append(fill(treeHashBlockSize, 'a'), fill(treeHashBlockSize/2, 'b')...)

	got, err := TreeHash(bytes.NewReader(data))
	require.NoError(t, err)

	h1 := sha256.Sum256(data[:treeHashBlockSize])
	h2 := sha256.Sum256(data[treeHashBlockSize:])
	want := hashPair(h1, h2)
	assert.Equal(t, hex.EncodeToString(want[:]), got)
}

func TestTreeHashOddBlockPromoted(t *testing.T) {
	data := fill(3*treeHashBlockSize, 0)

	got, err := TreeHash(bytes.NewReader(data))
	require.NoError(t, err)

	// Three leaves: the odd third digest is promoted unchanged and paired
	// with the combined first two at the next level.
	leaf := sha256.Sum256(data[:treeHashBlockSize])
	want := hashPair(hashPair(leaf, leaf), leaf)
	assert.Equal(t, hex.EncodeToString(want[:]), got)
}

func TestTreeHashFourBlocks(t *testing.T) {
	var data []byte
	for b := byte(0); b < 4; b++ {
		data = append(data, fill(treeHashBlockSize, b)...)
	}

	got, err := TreeHash(bytes.NewReader(data))
	require.NoError(t, err)

	var leaves [4][sha256.Size]byte
	for i := range leaves {
		leaves[i] = sha256.Sum256(data[i*treeHashBlockSize : (i+1)*treeHashBlockSize])
	}
	want := hashPair(hashPair(leaves[0], leaves[1]), hashPair(leaves[2], leaves[3]))
	assert.Equal(t, hex.EncodeToString(want[:]), got)
}

func TestTreeHashDependsOnContent(t *testing.T) {
	a, err := TreeHash(bytes.NewReader(fill(2*treeHashBlockSize, 'a')))
	require.NoError(t, err)
	b, err := TreeHash(bytes.NewReader(fill(2*treeHashBlockSize, 'b')))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
