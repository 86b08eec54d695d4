// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

import (
	"encoding/binary"
	"io"
)

// Decompress expands an LZNT1 stream (a concatenation of chunks, as produced
// by Compress or RtlCompressBuffer with the standard engine) and returns the
// original bytes. opts may be nil; the zero options keep length checking
// enabled. Empty input yields empty output.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions(len(src))
	}

	sizeHint := opts.SizeHint
	if sizeHint < len(src) {
		sizeHint = len(src)
	}

	out := make([]byte, 0, sizeHint)
	pos := 0

	for pos < len(src) {
		if len(src)-pos < 2 {
			return nil, ErrTruncatedHeader
		}

		header := binary.LittleEndian.Uint16(src[pos:])
		pos += 2

		length := int(header&headerSizeMask) + 1
		if length > len(src)-pos {
			if !opts.DisableLengthCheck {
				return nil, ErrInvalidChunkLength
			}

			// Trailing truncation accepted: decode the prefix that is there.
			length = len(src) - pos
		}

		payload := src[pos : pos+length]
		pos += length

		if header&headerCompressed == 0 {
			out = append(out, payload...)
			continue
		}

		var err error
		out, err = appendChunk(out, payload)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// appendChunk expands the payload of one compressed chunk onto out and
// returns the grown slice. Back-references are resolved against bytes emitted
// for this chunk only; base marks where the chunk starts in out.
func appendChunk(out, payload []byte) ([]byte, error) {
	base := len(out)
	pos := 0

	for pos < len(payload) {
		flags := payload[pos]
		pos++

		// A group may end short of 8 tokens when the payload runs out; the
		// unused flag bits are simply never consulted.
		for i := 0; i < 8; i++ {
			if pos == len(payload) {
				break
			}

			if flags&(1<<i) == 0 {
				out = append(out, payload[pos])
				pos++

				continue
			}

			if len(payload)-pos < 2 {
				return nil, ErrTruncatedPayload
			}

			word := binary.LittleEndian.Uint16(payload[pos:])
			pos += 2

			split := lengthBits(len(out) - base)
			length := int(word&(1<<split-1)) + minMatchLen
			offset := int(word>>split) + 1

			if offset > len(out)-base {
				return nil, ErrInvalidBackReference
			}

			out = appendBackRef(out, offset, length)
		}
	}

	return out, nil
}
