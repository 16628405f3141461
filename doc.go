// Package apng is a low-level, streaming Animated PNG encoder. Callers supply
// already-decoded raw pixel buffers and a writable byte sink; the package emits
// a bit-exact APNG byte stream conforming to PNG 1.2 plus the APNG extension
// chunks (acTL, fcTL, fdAT).
//
// It does not decode PNGs, handle palette images, interlace, or embed ancillary
// metadata chunks. Argument parsing and file setup are the caller's concern.
//
// For encoding details, see:
//
// https://en.wikipedia.org/wiki/APNG#Technical_details
// https://wiki.mozilla.org/APNG_Specification
// https://www.w3.org/TR/PNG/
package apng
