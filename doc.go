// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lznt1

/*
Package lznt1 implements LZNT1 compression and decompression, byte-compatible
with the Windows RtlCompressBuffer / RtlDecompressBuffer routines using the
standard engine (COMPRESSION_FORMAT_LZNT1). The format shows up in NTFS
compressed files, registry hives, hibernation files and memory captures.

A stream is a bare concatenation of self-contained chunks of up to 4096 bytes,
each with a 16-bit header that says whether its payload is stored verbatim or
is a token stream of literals and back-references. The offset/length split of
a back-reference word is not fixed: it shifts toward wider offsets as the
chunk fills up.

# Decompress

From a byte slice (options may be nil):

	out, err := lznt1.Decompress(compressed, nil)

Streams captured with trailing truncation can be decoded up to the cut:

	out, err := lznt1.Decompress(compressed, &lznt1.DecompressOptions{DisableLengthCheck: true})

From an io.Reader:

	out, err := lznt1.DecompressFromReader(r, lznt1.DefaultDecompressOptions(expectedLen))

# Compress

Options may be nil (4096-byte chunks, the size Windows uses):

	out, err := lznt1.Compress(data, nil)

The compressor is greedy with a one-byte lookahead; it favors speed and
compatibility over the last few percent of ratio. Chunks that do not shrink
are stored verbatim, so compressing incompressible data costs two bytes per
chunk at most.
*/
package lznt1
