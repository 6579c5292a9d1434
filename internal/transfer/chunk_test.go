package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePartSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{name: "minimum", size: MinPartSize},
		{name: "maximum", size: MaxPartSize},
		{name: "default upload size", size: 32 << 20},
		{name: "below minimum", size: MinPartSize - 1, wantErr: true},
		{name: "above maximum", size: MaxPartSize * 2, wantErr: true},
		{name: "not a power of two", size: 3 << 20, wantErr: true},
		{name: "power of two below minimum", size: 1 << 19, wantErr: true},
		{name: "zero", size: 0, wantErr: true},
		{name: "negative", size: -(1 << 20), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePartSize(tt.size)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPartSize)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name      string
		totalSize int64
		chunkSize int64
		want      []ByteRange
	}{
		{
			name:      "exact multiple",
			totalSize: 30,
			chunkSize: 10,
			want:      []ByteRange{{0, 10}, {10, 20}, {20, 30}},
		},
		{
			name:      "ragged tail",
			totalSize: 25,
			chunkSize: 10,
			want:      []ByteRange{{0, 10}, {10, 20}, {20, 25}},
		},
		{
			name:      "single short chunk",
			totalSize: 7,
			chunkSize: 10,
			want:      []ByteRange{{0, 7}},
		},
		{
			name:      "empty input",
			totalSize: 0,
			chunkSize: 10,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plan(tt.totalSize, tt.chunkSize))
		})
	}
}

func TestPlanCoversEveryByteOnce(t *testing.T) {
	const totalSize, chunkSize = 100 << 20, 32 << 20

	ranges := Plan(totalSize, chunkSize)
	assert.Len(t, ranges, 4)

	var pos int64
	for _, r := range ranges {
		assert.Equal(t, pos, r.Start, "ranges must be contiguous")
		assert.Greater(t, r.Len(), int64(0))
		pos = r.End
	}
	assert.Equal(t, int64(totalSize), pos)
}
