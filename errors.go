// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrTruncatedHeader is returned when fewer than two bytes remain where a
	// chunk header is expected.
	ErrTruncatedHeader = errors.New("truncated chunk header")
	// ErrInvalidChunkLength is returned when a chunk header declares a payload
	// longer than the remaining input. Only raised while length checking is
	// enabled (see DecompressOptions.DisableLengthCheck).
	ErrInvalidChunkLength = errors.New("invalid chunk length")
	// ErrTruncatedPayload is returned when a compressed chunk ends in the
	// middle of a back-reference word (only one of its two bytes remains). A
	// payload that ends before a token starts is a legal partial group.
	ErrTruncatedPayload = errors.New("truncated chunk payload")
	// ErrInvalidBackReference is returned when a back-reference points before
	// the start of the current chunk.
	ErrInvalidBackReference = errors.New("invalid back-reference")
	// ErrInputTooLarge is returned when Compress input exceeds 2^32-1 bytes,
	// or when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds maximum size")
)
