// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

import "math/bits"

// LZNT1 format constants: chunk header layout, chunk bounds, and the
// length/offset field split of back-reference words.

// Chunk header layout (16-bit little-endian).
const (
	headerSizeMask   = 0x0FFF // bits 0..11: payload length minus one
	headerSignature  = 0x3000 // bits 12..14: engine signature, always 011
	headerCompressed = 0x8000 // bit 15: payload is a token stream

	storedChunkHeader     = headerSignature                    // 0x3000
	compressedChunkHeader = headerSignature | headerCompressed // 0xB000
)

// Chunk and match bounds.
const (
	// maxChunkSize is the largest payload a chunk header can describe.
	maxChunkSize = headerSizeMask + 1

	// minMatchLen is the shortest back-reference the format can encode
	// (length fields are stored minus 3).
	minMatchLen = 3

	// maxInputSize bounds Compress input; the format has no stream length
	// field of its own, this mirrors the 32-bit size argument of the
	// RtlCompressBuffer interface the format comes from.
	maxInputSize = 1<<32 - 1
)

// lengthBits returns the bit width of the length field in a back-reference
// word, given how many bytes have been emitted in the current chunk at the
// moment the token begins. The offset field takes the remaining high bits of
// the word. The width shrinks from 12 to 4 as emitted grows: every doubling
// of the emitted count past 16 trades one length bit for one offset bit.
func lengthBits(emitted int) int {
	if emitted < 0x10 {
		return 12
	}

	return 16 - bits.Len(uint(emitted))
}
