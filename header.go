package apng

import "io"

// writeSignature writes the 8-byte PNG signature.
func writeSignature(w io.Writer) error {
	_, err := io.WriteString(w, pngSignature)
	return err
}

// writeIHDR writes the 13-byte image header chunk.
func writeIHDR(w io.Writer, meta Meta) error {
	var buf [13]byte
	putUint32(buf[0:4], meta.Width)
	putUint32(buf[4:8], meta.Height)
	buf[8] = meta.Color.BitDepth
	buf[9] = byte(meta.Color.Type)
	buf[10] = 0 // compression method
	buf[11] = 0 // filter method
	buf[12] = 0 // interlace method
	return writeChunk(w, "IHDR", buf[:])
}

// writeACTL writes the 8-byte animation control chunk.
func writeACTL(w io.Writer, meta Meta) error {
	var buf [8]byte
	putUint32(buf[0:4], meta.Frames)
	putUint32(buf[4:8], meta.Plays)
	return writeChunk(w, "acTL", buf[:])
}

// writeFCTL writes the 26-byte frame control chunk.
func writeFCTL(w io.Writer, seq uint32, r rectangle, delay Delay, dispose DisposeOperator, blend BlendOperator) error {
	var buf [26]byte
	putUint32(buf[0:4], seq)
	putUint32(buf[4:8], r.Width)
	putUint32(buf[8:12], r.Height)
	putUint32(buf[12:16], r.X)
	putUint32(buf[16:20], r.Y)
	putUint16(buf[20:22], delay.Numerator)
	putUint16(buf[22:24], delay.Denominator)
	buf[24] = byte(dispose)
	buf[25] = byte(blend)
	return writeChunk(w, "fcTL", buf[:])
}

// writeIEND writes the empty-payload end-of-image chunk.
func writeIEND(w io.Writer) error {
	return writeChunk(w, "IEND", nil)
}
