package transfer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// treeHashBlockSize is the leaf size of the tree hash: 1 MiB, fixed by the
// service's integrity contract.
const treeHashBlockSize = 1 << 20

// TreeHash computes the hex-encoded SHA-256 tree hash of everything readable
// from r: the content is split into 1 MiB leaves, each leaf is hashed, and
// adjacent digests are pairwise hashed level by level until a single root
// remains. An odd digest at the end of a level is promoted unchanged.
//
// The reader is consumed to EOF; callers hashing a seekable source must
// rewind it themselves afterwards.
func TreeHash(r io.Reader) (string, error) {
	var level [][sha256.Size]byte

	buf := make([]byte, treeHashBlockSize)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			level = append(level, sha256.Sum256(buf[:n]))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("tree hash read: %w", err)
		}
	}

	if len(level) == 0 {
		level = append(level, sha256.Sum256(nil))
	}

	pair := make([]byte, 2*sha256.Size)
	for len(level) > 1 {
		next := make([][sha256.Size]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			copy(pair, level[i][:])
			copy(pair[sha256.Size:], level[i+1][:])
			next = append(next, sha256.Sum256(pair))
		}
		level = next
	}

	return hex.EncodeToString(level[0][:]), nil
}
