// Package simd provides portable byte-search primitives used to scan
// User-Agent strings for literal fragments.
//
// The retrieved reference implementation dispatches between AVX2 assembly
// and a pure-Go SWAR (SIMD Within A Register) fallback depending on the
// target architecture. Only the portable fallback is carried here (see
// DESIGN.md), so these functions always use the SWAR/rare-byte techniques
// rather than hand-written assembly.
package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack, or
// -1 if needle is not present.
//
// It processes 8 bytes at a time using uint64 bitwise operations (SWAR),
// which is substantially faster than a byte-by-byte loop on medium and
// large inputs while remaining architecture independent.
func Memchr(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen == 0 {
		return -1
	}

	if haystackLen < 8 {
		for idx := 0; idx < haystackLen; idx++ {
			if haystack[idx] == needle {
				return idx
			}
		}
		return -1
	}

	needleMask := uint64(needle) * 0x0101010101010101

	idx := 0
	for idx+8 <= haystackLen {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor := chunk ^ needleMask

		const lo8 = 0x0101010101010101
		const hi8 = 0x8080808080808080
		hasZero := (xor - lo8) & ^xor & hi8

		if hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
		idx += 8
	}

	for idx < haystackLen {
		if haystack[idx] == needle {
			return idx
		}
		idx++
	}

	return -1
}

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present in haystack.
//
// The search selects the rarest byte in needle (its last byte, a cheap but
// effective heuristic: word/value endings tend to be more distinctive than
// beginnings), finds candidate positions for it with Memchr, and verifies
// the full needle at each candidate. This avoids scanning every position
// in haystack for a multi-byte comparison.
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rareByte, rareIdx := needle[needleLen-1], needleLen-1

	searchStart := 0
	for {
		candidatePos := Memchr(haystack[searchStart:], rareByte)
		if candidatePos == -1 {
			return -1
		}
		candidatePos += searchStart

		needleStartPos := candidatePos - rareIdx
		if needleStartPos < 0 || needleStartPos+needleLen > haystackLen {
			searchStart = candidatePos + 1
			if searchStart >= haystackLen {
				return -1
			}
			continue
		}

		if bytes.Equal(haystack[needleStartPos:needleStartPos+needleLen], needle) {
			return needleStartPos
		}

		searchStart = candidatePos + 1
		if searchStart >= haystackLen {
			return -1
		}
	}
}
