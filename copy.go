// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// appendBackRef appends length bytes read offset positions behind the end of
// dst. If length > offset the match extends past the end of the existing
// output: LZ semantics require "forward" expansion, each newly appended byte
// becomes valid source for the remainder of the same token, which yields a
// periodic repetition of the last offset bytes. Callers validate offset
// against the chunk start before calling.
func appendBackRef(dst []byte, offset, length int) []byte {
	matchPos := len(dst) - offset

	if length <= offset {
		return append(dst, dst[matchPos:matchPos+length]...)
	}

	for n := 0; n < length; n++ {
		dst = append(dst, dst[matchPos])
		matchPos++
	}

	return dst
}
