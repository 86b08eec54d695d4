// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lznt1

// lznt1 compresses and decompresses files in the Windows LZNT1 format.
//
// Without a path it filters standard input to standard output. With -verify
// it instead round-trips the input in memory and reports sizes, the ratio and
// xxhash64 digests of each stage, which is handy when comparing against
// output of the native RtlCompressBuffer routine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/woozymasta/lznt1"
)

var (
	decompressFlag    = flag.Bool("d", false, "decompress instead of compress")
	outputFlag        = flag.String("o", "", "output path (default standard output)")
	chunkSizeFlag     = flag.Int("chunk-size", 4096, "raw chunk size for compression, at most 4096")
	noLengthCheckFlag = flag.Bool("no-length-check", false, "accept a truncated final chunk when decompressing")
	verifyFlag        = flag.Bool("verify", false, "compress, decompress and compare in memory; print a report")
)

func main() {
	if err := main1(); err != nil {
		fmt.Fprintln(os.Stderr, "lznt1:", err)
		os.Exit(1)
	}
}

func main1() error {
	flag.Parse()
	if flag.NArg() > 1 {
		return fmt.Errorf("at most one input path expected, got %d", flag.NArg())
	}

	data, err := readInput()
	if err != nil {
		return err
	}

	if *verifyFlag {
		return verify(data)
	}

	var out []byte
	if *decompressFlag {
		out, err = lznt1.Decompress(data, &lznt1.DecompressOptions{
			DisableLengthCheck: *noLengthCheckFlag,
		})
	} else {
		out, err = lznt1.Compress(data, &lznt1.CompressOptions{ChunkSize: *chunkSizeFlag})
	}
	if err != nil {
		return err
	}

	return writeOutput(out)
}

func readInput() ([]byte, error) {
	if flag.NArg() == 0 {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(flag.Arg(0))
}

func writeOutput(out []byte) error {
	if *outputFlag == "" {
		_, err := os.Stdout.Write(out)
		return err
	}

	return os.WriteFile(*outputFlag, out, 0o644)
}

// verify round-trips data through the codec and reports each stage.
func verify(data []byte) error {
	fmt.Printf("input:        %8d bytes  xxh64 %016x\n", len(data), xxhash.Sum64(data))

	compressed, err := lznt1.Compress(data, &lznt1.CompressOptions{ChunkSize: *chunkSizeFlag})
	if err != nil {
		return err
	}

	ratio := 0.0
	if len(compressed) > 0 {
		ratio = float64(len(data)) / float64(len(compressed))
	}
	fmt.Printf("compressed:   %8d bytes  xxh64 %016x  ratio %.2f\n",
		len(compressed), xxhash.Sum64(compressed), ratio)

	decompressed, err := lznt1.Decompress(compressed, lznt1.DefaultDecompressOptions(len(data)))
	if err != nil {
		return err
	}

	fmt.Printf("decompressed: %8d bytes  xxh64 %016x\n", len(decompressed), xxhash.Sum64(decompressed))

	if xxhash.Sum64(decompressed) != xxhash.Sum64(data) || len(decompressed) != len(data) {
		return fmt.Errorf("round-trip mismatch: %d bytes in, %d bytes out", len(data), len(decompressed))
	}

	fmt.Println("round-trip OK")

	return nil
}
