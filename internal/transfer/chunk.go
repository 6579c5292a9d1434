// Package transfer implements the chunked transfer machinery: part-size
// validation, chunk planning, the windowed read adapter, the SHA-256 tree
// hash, and the engine that drives multipart uploads and downloads against
// the remote archive service.
package transfer

import (
	"errors"
	"fmt"
)

const (
	// MinPartSize is the smallest part size the service accepts: 1 MiB.
	MinPartSize int64 = 1 << 20
	// MaxPartSize is the largest part size the service accepts: 4 GiB.
	MaxPartSize int64 = 1 << 32
)

// ErrInvalidPartSize is returned (wrapped) when a part size is not a power
// of two within [MinPartSize, MaxPartSize].
var ErrInvalidPartSize = errors.New("part size must be a power of two between 1048576 and 4294967296 bytes")

// ValidatePartSize checks the service's part-size constraint. It must be
// called before any transfer begins so that a bad size never reaches the
// wire.
func ValidatePartSize(n int64) error {
	if n < MinPartSize || n > MaxPartSize || n&(n-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPartSize, n)
	}
	return nil
}

// ByteRange is a half-open byte interval [Start, End).
type ByteRange struct {
	Start int64
	End   int64
}

// Len returns the number of bytes covered by the range.
func (r ByteRange) Len() int64 {
	return r.End - r.Start
}

// Plan produces the ordered sequence of half-open ranges covering
// [0, totalSize) in chunks of chunkSize bytes. Every range has length
// chunkSize except possibly the last. A zero totalSize yields no ranges.
func Plan(totalSize, chunkSize int64) []ByteRange {
	if totalSize <= 0 || chunkSize <= 0 {
		return nil
	}

	n := (totalSize + chunkSize - 1) / chunkSize
	ranges := make([]ByteRange, 0, n)
	for start := int64(0); start < totalSize; start += chunkSize {
		end := start + chunkSize
		if end > totalSize {
			end = totalSize
		}
		ranges = append(ranges, ByteRange{Start: start, End: end})
	}

	return ranges
}
