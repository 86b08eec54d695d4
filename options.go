// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

// CompressOptions configures compression.
type CompressOptions struct {
	// ChunkSize is the raw chunk size the input is sliced into. Zero or
	// negative means the default 4096; values above 4096 are clamped, the
	// header size field cannot describe a longer payload.
	ChunkSize int
}

// DefaultCompressOptions returns options with the standard 4096-byte chunk size.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{ChunkSize: maxChunkSize}
}

// DecompressOptions configures decompression. The zero value keeps length
// checking enabled and uses no size hint or input limit.
type DecompressOptions struct {
	// DisableLengthCheck accepts a final chunk whose header declares more
	// bytes than remain; the valid prefix is decoded and the rest dropped.
	// A compressed final chunk cut inside a back-reference word still fails
	// with ErrTruncatedPayload. Useful for captures with trailing truncation.
	DisableLengthCheck bool
	// SizeHint pre-sizes the output buffer (expected decompressed size).
	// Purely a performance hint; the output grows past it as needed.
	SizeHint int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with length checking enabled and
// the given output size hint.
func DefaultDecompressOptions(sizeHint int) *DecompressOptions {
	return &DecompressOptions{SizeHint: sizeHint}
}
