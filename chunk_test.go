package apng

import (
	"bytes"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutUint16BigEndian(t *testing.T) {
	var b [2]byte
	putUint16(b[:], 0x0102)
	assert.Equal(t, []byte{0x01, 0x02}, b[:])
}

func TestPutUint32BigEndian(t *testing.T) {
	var b [4]byte
	putUint32(b[:], 0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b[:])
}

// TestWriteChunkCRC verifies P2: CRC-32(type || data) matches the 4-byte
// trailer, for both an empty and a non-empty payload.
func TestWriteChunkCRC(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
	}{
		{"IEND", nil},
		{"fcTL", []byte{0, 0, 0, 1, 0, 0, 0, 2}},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		require.NoError(t, writeChunk(&buf, tc.name, tc.payload))

		b := buf.Bytes()
		length := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		assert.Equal(t, uint32(len(tc.payload)), length)
		assert.Equal(t, tc.name, string(b[4:8]))

		crc := crc32.NewIEEE()
		crc.Write(b[4:8])
		crc.Write(tc.payload)
		trailer := b[8+len(tc.payload):]
		got := uint32(trailer[0])<<24 | uint32(trailer[1])<<16 | uint32(trailer[2])<<8 | uint32(trailer[3])
		assert.Equal(t, crc.Sum32(), got)
	}
}

func TestWriteChunkPropagatesSinkError(t *testing.T) {
	err := writeChunk(failingWriter{}, "IEND", nil)
	require.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errFailingWrite
}

var errFailingWrite = bytes.ErrTooLarge
