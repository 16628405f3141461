package apng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unfilterRow is the PNG inverse of filterRow, used only by tests to check
// P7 (filter idempotence).
func unfilterRow(dst []byte, ft Filter, filtered, prev []byte, bpp uint32) {
	n := len(filtered)
	switch ft {
	case FilterNone:
		copy(dst, filtered)
	case FilterSub:
		for i := 0; i < n; i++ {
			var a byte
			if uint32(i) >= bpp {
				a = dst[i-int(bpp)]
			}
			dst[i] = filtered[i] + a
		}
	case FilterUp:
		for i := 0; i < n; i++ {
			dst[i] = filtered[i] + prev[i]
		}
	case FilterAverage:
		for i := 0; i < n; i++ {
			var a byte
			if uint32(i) >= bpp {
				a = dst[i-int(bpp)]
			}
			b := prev[i]
			dst[i] = filtered[i] + byte((int(a)+int(b))/2)
		}
	case FilterPaeth:
		for i := 0; i < n; i++ {
			var a, c byte
			if uint32(i) >= bpp {
				a = dst[i-int(bpp)]
				c = prev[i-int(bpp)]
			}
			b := prev[i]
			dst[i] = filtered[i] + paethPredictor(a, b, c)
		}
	}
}

func TestFilterRowIdempotence(t *testing.T) {
	const bpp = 3
	rowLen := 4 * bpp
	prevRow := []byte{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}
	curRow := []byte{200, 150, 5, 250, 0, 9, 33, 77, 128, 255, 1, 2}
	zero := make([]byte, rowLen)

	for _, tc := range []struct {
		name string
		ft   Filter
		prev []byte
	}{
		{"none-top-row", FilterNone, zero},
		{"sub-top-row", FilterSub, zero},
		{"up-top-row", FilterUp, zero},
		{"average-top-row", FilterAverage, zero},
		{"paeth-top-row", FilterPaeth, zero},
		{"none", FilterNone, prevRow},
		{"sub", FilterSub, prevRow},
		{"up", FilterUp, prevRow},
		{"average", FilterAverage, prevRow},
		{"paeth", FilterPaeth, prevRow},
	} {
		t.Run(tc.name, func(t *testing.T) {
			filtered := make([]byte, rowLen)
			filterRow(filtered, tc.ft, curRow, tc.prev, bpp)

			restored := make([]byte, rowLen)
			unfilterRow(restored, tc.ft, filtered, tc.prev, bpp)

			assert.Equal(t, curRow, restored)
		})
	}
}

func TestFilterRowLeftEdge(t *testing.T) {
	// pixel_bytes == row length: every byte is "off the left edge".
	const bpp = 4
	cur := []byte{1, 2, 3, 4}
	prev := []byte{9, 9, 9, 9}
	dst := make([]byte, 4)

	filterRow(dst, FilterSub, cur, prev, bpp)
	assert.Equal(t, cur, dst, "Sub with a==0 across the whole row is a no-op")

	filterRow(dst, FilterPaeth, cur, prev, bpp)
	restored := make([]byte, 4)
	unfilterRow(restored, FilterPaeth, dst, prev, bpp)
	assert.Equal(t, cur, restored)
}

func TestPaethPredictorTieBreak(t *testing.T) {
	// a == b == c: all distances are 0, ties broken in order a, b, c -> a.
	assert.Equal(t, byte(5), paethPredictor(5, 5, 5))
	// p = a+b-c; pick smallest |p-x|, ties favor a then b.
	assert.Equal(t, byte(10), paethPredictor(10, 20, 20))
}

func TestSampleRowsSmallImage(t *testing.T) {
	assert.Equal(t, []uint32{0, 1, 2}, sampleRows(3))
	assert.Len(t, sampleRows(10), 10)
}

func TestSampleRowsLargeImage(t *testing.T) {
	rows := sampleRows(100)
	require.Len(t, rows, 30)
	assert.Equal(t, uint32(0), rows[0])
	assert.Equal(t, uint32(50), rows[10])
	assert.Equal(t, uint32(90), rows[20])
}

func TestInferFilterReturnsValidFilter(t *testing.T) {
	// A row of all zeros compresses best under every filter (all differences
	// are zero), so its compressed length is a poor discriminator; instead
	// use incompressible random-looking data to exercise the max-wins branch
	// without asserting a specific filter (only that inference terminates
	// and returns one of the five valid filters).
	data := make([]byte, 8*8)
	for i := range data {
		data[i] = byte(i*37 + 11)
	}
	ft := inferFilter(data, 8, 8, 8, 1)
	switch ft {
	case FilterNone, FilterSub, FilterUp, FilterAverage, FilterPaeth:
	default:
		t.Fatalf("unexpected filter %v", ft)
	}
}
