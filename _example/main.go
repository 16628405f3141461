// Command example demonstrates encoding a small animated PNG. It is kept
// under an underscore-prefixed directory so `go build ./...` skips it (the
// same convention the teacher package uses for its own usage sample).
package main

import (
	"log"
	"os"

	apngenc "github.com/chromakit/apngenc"
)

func main() {
	f, err := os.Create("example.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	meta := apngenc.Meta{
		Width:  2,
		Height: 2,
		Color:  apngenc.RGB(8),
		Frames: 4,
		Plays:  0,
	}
	enc, err := apngenc.Create(f, meta)
	if err != nil {
		log.Fatal(err)
	}

	frame := apngenc.Frame{Delay: apngenc.Delay{Numerator: 1, Denominator: 2}}
	colors := [][]byte{
		{0xFF, 0x00, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF},
		{0x00, 0xFF, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00, 0x00},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0x00},
	}
	for _, pixels := range colors {
		if err := enc.WriteFrame(pixels, frame); err != nil {
			log.Fatal(err)
		}
	}

	if err := enc.Finish(); err != nil {
		log.Fatal(err)
	}
}
