// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

import "bytes"

// findMatch searches history (the bytes already emitted in the current chunk)
// for the longest back-reference covering a prefix of target. maxLen caps the
// usable length; the caller derives it from the current length-field width.
//
// Returns (offset, length) with offset in [1, len(history)] and length in
// [minMatchLen, maxLen], or (0, 0) when no match of at least minMatchLen
// bytes exists, counting run-length extensions of shorter prefixes.
//
// The search grows the probed prefix one byte at a time and takes the
// rightmost occurrence of each prefix. A candidate whose occurrence ends
// exactly at the end of history (offset == prefix length) can keep matching
// into bytes the reference itself produces; that run-length case is extended
// by comparing target against itself at the period given by the offset.
// Chunks are at most 4096 bytes, so the quadratic scan stays cheap; ties keep
// the first candidate found, a replacement needs strictly greater length.
func findMatch(history, target []byte, maxLen int) (offset, length int) {
	if maxLen > len(target) {
		maxLen = len(target)
	}

	for i := 1; i <= maxLen; i++ {
		pos := bytes.LastIndex(history, target[:i])
		if pos < 0 {
			break
		}

		candOffset := len(history) - pos
		candLen := i

		if candOffset == i {
			for candLen < maxLen && target[candLen] == target[candLen-candOffset] {
				candLen++
			}
		}

		if candLen > length {
			offset = candOffset
			length = candLen
		}
	}

	if length < minMatchLen {
		return 0, 0
	}

	return offset, length
}
