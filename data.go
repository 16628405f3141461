package apng

import (
	"bytes"
	"compress/zlib"
	"io"
)

// encodeScanlines filters every row of data with ft and feeds the result
// (one 1-byte filter tag plus rowLen filtered bytes per row) into a zlib
// stream at the highest compression setting, per spec.md §4.4.
func encodeScanlines(data []byte, width, height, rowStride, pixelBytes uint32, ft Filter) ([]byte, error) {
	rowLen := int(width * pixelBytes)

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}

	zero := make([]byte, rowLen)
	dst := make([]byte, 1+rowLen)
	dst[0] = byte(ft)
	prev := zero

	for row := uint32(0); row < height; row++ {
		start := int(row) * int(rowStride)
		cur := data[start : start+rowLen]
		filterRow(dst[1:], ft, cur, prev, pixelBytes)
		if _, err := zw.Write(dst); err != nil {
			zw.Close()
			return nil, err
		}
		prev = cur
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeIDAT emits the filtered, zlib-compressed scanlines as a single IDAT
// chunk — used both for a distinct default image and for a first frame that
// doubles as the default image.
func writeIDAT(w io.Writer, zlibData []byte) error {
	return writeChunk(w, "IDAT", zlibData)
}

// writeFDAT emits the filtered, zlib-compressed scanlines as a single fdAT
// chunk, prefixed by the 4-byte big-endian sequence number.
func writeFDAT(w io.Writer, seq uint32, zlibData []byte) error {
	payload := make([]byte, 4+len(zlibData))
	putUint32(payload[:4], seq)
	copy(payload[4:], zlibData)
	return writeChunk(w, "fdAT", payload)
}
