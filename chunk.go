package apng

import (
	"hash/crc32"
	"io"
)

// pngSignature is the 8-byte PNG file signature.
const pngSignature = "\x89PNG\r\n\x1a\n"

// Big-endian, ported from the teacher's writeUint16/writeUint32.
func putUint16(b []byte, u uint16) {
	b[0] = byte(u >> 8)
	b[1] = byte(u)
}

func putUint32(b []byte, u uint32) {
	b[0] = byte(u >> 24)
	b[1] = byte(u >> 16)
	b[2] = byte(u >> 8)
	b[3] = byte(u)
}

// writeChunk frames payload as length||type||data||CRC-32 and writes it to w.
// The CRC covers type and data, using the PNG CRC-32 (ISO-3309 polynomial,
// i.e. crc32.IEEE).
func writeChunk(w io.Writer, name string, payload []byte) error {
	var header [8]byte
	var footer [4]byte

	putUint32(header[:4], uint32(len(payload)))
	header[4] = name[0]
	header[5] = name[1]
	header[6] = name[2]
	header[7] = name[3]

	crc := crc32.NewIEEE()
	crc.Write(header[4:8])
	crc.Write(payload)
	putUint32(footer[:], crc.Sum32())

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return err
		}
	}
	_, err := w.Write(footer[:])
	return err
}
