// Package asciiscan detects runs of plain ASCII bytes so the codec
// package can take a fast path through the ASCII and UTF-8 transcoders
// instead of decoding one rune at a time.
//
// The detection loop uses the SWAR (SIMD Within A Register) technique:
// eight bytes are loaded as a uint64 and checked for a set high bit in
// one shot, rather than branching per byte.
package asciiscan

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// hasAVX2 records whether the host CPU supports AVX2. No vector code
// path exists in this package and nothing reads the flag; it is the
// hook an assembly-backed implementation would gate on, the same way
// the teacher package gated its own Memchr family.
var hasAVX2 = cpu.X86.HasAVX2

// EnableASCIIOptimization gates the SWAR fast path. Tests that need to
// exercise a codec's byte-at-a-time fallback flip this off rather than
// constructing inputs long enough to avoid ever taking the fast path.
var EnableASCIIOptimization = true

// AllASCII reports whether every byte in data is in the range 0x00-0x7F.
//
// Codecs call this before falling into their general per-rune loop:
// ASCII-only input decodes byte for byte to identical rune values under
// ASCII, Latin-1 and UTF-8, so a true result lets the caller skip
// straight to a byte-to-rune copy.
func AllASCII(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}

	if !EnableASCIIOptimization {
		return FirstNonASCII(data) == -1
	}

	if n < 8 {
		for i := 0; i < n; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	const hi8 = uint64(0x8080808080808080)

	idx := 0
	for idx+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[idx:])
		if chunk&hi8 != 0 {
			return false
		}
		idx += 8
	}

	for idx < n {
		if data[idx] >= 0x80 {
			return false
		}
		idx++
	}

	return true
}

// FirstNonASCII returns the index of the first byte >= 0x80 in data, or
// -1 if data is entirely ASCII. Stateful decoders use this to copy the
// clean ASCII prefix in bulk before switching to the slow path at the
// first non-ASCII byte.
func FirstNonASCII(data []byte) int {
	for i, b := range data {
		if b >= 0x80 {
			return i
		}
	}
	return -1
}
