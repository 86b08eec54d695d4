// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

import "encoding/binary"

// Compress encodes src as an LZNT1 stream. opts may be nil (default 4096-byte
// chunks). Each chunk is compressed independently; a chunk whose token stream
// would not shrink it is stored verbatim, so output never grows by more than
// one header per chunk. The only error is ErrInputTooLarge for inputs longer
// than 2^32-1 bytes.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = maxChunkSize
	}
	chunkSize = min(chunkSize, maxChunkSize)

	if uint64(len(src)) > maxInputSize {
		return nil, ErrInputTooLarge
	}

	out := make([]byte, 0, len(src)+len(src)/8+16)

	scratch := acquireChunkScratch()
	defer releaseChunkScratch(scratch)

	for start := 0; start < len(src); start += chunkSize {
		chunk := src[start:min(start+chunkSize, len(src))]
		payload := compressChunk(chunk, (*scratch)[:0])

		if len(payload) < len(chunk) {
			out = binary.LittleEndian.AppendUint16(out, compressedChunkHeader|uint16(len(payload)-1))
			out = append(out, payload...)
		} else {
			out = binary.LittleEndian.AppendUint16(out, storedChunkHeader|uint16(len(chunk)-1))
			out = append(out, chunk...)
		}
	}

	return out, nil
}

// compressChunk tokenizes one raw chunk into groups of eight flag-tagged
// tokens, appending to tokens (a scratch buffer sized so it never grows).
// The container decides afterwards whether the result is worth keeping, so
// the token stream is produced even when it ends up longer than the chunk.
func compressChunk(chunk, tokens []byte) []byte {
	pos := 0

	for pos < len(chunk) {
		// Reserve the flag byte; its bits are known only once the group is done.
		flagIdx := len(tokens)
		tokens = append(tokens, 0)

		var flags byte
		for i := 0; i < 8 && pos < len(chunk); i++ {
			split := lengthBits(pos)
			maxLen := min(len(chunk)-pos, 1<<split+2)

			offset, length := findMatch(chunk[:pos], chunk[pos:], maxLen)

			// Lazy one-byte lookahead: when deferring by one literal would
			// yield at least as long a match, emit the literal now and let
			// the next token take the longer match.
			if length > 0 {
				_, lookahead := findMatch(chunk[:pos+1], chunk[pos+1:], maxLen)
				if length < lookahead+1 {
					length = 0
				}
			}

			if length > 0 {
				word := uint16(offset-1)<<split | uint16(length-minMatchLen)
				tokens = binary.LittleEndian.AppendUint16(tokens, word)
				flags |= 1 << i
				pos += length
			} else {
				tokens = append(tokens, chunk[pos])
				pos++
			}
		}

		tokens[flagIdx] = flags
	}

	return tokens
}
