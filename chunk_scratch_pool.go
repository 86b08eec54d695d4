// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

package lznt1

import "sync"

// maxChunkPayloadSize is the largest token stream one chunk can produce:
// 4096 literals plus one flag byte per eight tokens.
const maxChunkPayloadSize = maxChunkSize + maxChunkSize/8

// chunkScratchPool pools per-chunk token buffers. The container copies each
// payload into the stream before the next chunk, so one buffer serves a whole
// Compress call and is reused across calls.
var chunkScratchPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, maxChunkPayloadSize)
		return &buf
	},
}

// acquireChunkScratch acquires a token buffer from the pool.
func acquireChunkScratch() *[]byte {
	return chunkScratchPool.Get().(*[]byte)
}

// releaseChunkScratch releases a token buffer to the pool.
func releaseChunkScratch(buf *[]byte) {
	if buf == nil {
		return
	}

	*buf = (*buf)[:0]
	chunkScratchPool.Put(buf)
}
