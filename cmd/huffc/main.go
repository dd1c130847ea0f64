// huffc compresses and decompresses files with Huffman coding.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	huffman "github.com/keerthanas2004/file-compression-decompression"
)

const containerExt = ".huff"

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "write the result to `FILE` instead of the default name",
}

var app = &cli.App{
	Name:  "huffc",
	Usage: "Huffman file compressor",
	Commands: []*cli.Command{
		{
			Name:      "compress",
			Usage:     "compress a file into a " + containerExt + " container",
			ArgsUsage: "<file>",
			Flags:     []cli.Flag{outputFlag},
			Action:    doCompress,
		},
		{
			Name:      "decompress",
			Usage:     "restore the original file from a " + containerExt + " container",
			ArgsUsage: "<file>",
			Flags:     []cli.Flag{outputFlag},
			Action:    doDecompress,
		},
		{
			Name:      "stat",
			Usage:     "print the frequency table size, bit length and ratio of a container",
			ArgsUsage: "<file>",
			Action:    doStat,
		},
		{
			Name:      "roundtrip",
			Usage:     "compress and decompress a file in memory and verify the result",
			ArgsUsage: "<file>",
			Action:    doRoundtrip,
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func inputArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one input file, got %d arguments", ctx.NArg())
	}
	return ctx.Args().First(), nil
}

func doCompress(ctx *cli.Context) error {
	in, err := inputArg(ctx)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	c := huffman.Compress(data)
	raw, err := c.MarshalBinary()
	if err != nil {
		return err
	}

	out := ctx.String(outputFlag.Name)
	if out == "" {
		out = in + containerExt
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d bytes in, %d bytes out (ratio %.3f)\n", out, len(data), len(raw), c.Ratio())
	return nil
}

func doDecompress(ctx *cli.Context) error {
	in, err := inputArg(ctx)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	c, err := huffman.ParseContainer(raw)
	if err != nil {
		return err
	}
	data, err := huffman.Decompress(c)
	if err != nil {
		return err
	}

	out := ctx.String(outputFlag.Name)
	if out == "" {
		out = strings.TrimSuffix(in, containerExt)
		if out == in {
			out = in + ".out"
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d bytes\n", out, len(data))
	return nil
}

func doStat(ctx *cli.Context) error {
	in, err := inputArg(ctx)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	c, err := huffman.ParseContainer(raw)
	if err != nil {
		return err
	}
	fmt.Printf("distinct symbols: %d\n", len(c.Freqs))
	fmt.Printf("input symbols:    %d\n", c.Freqs.Total())
	fmt.Printf("payload bits:     %d\n", c.Payload.BitLen)
	fmt.Printf("payload bytes:    %d\n", len(c.Payload.Bits))
	fmt.Printf("ratio:            %.3f\n", c.Ratio())
	return nil
}

func doRoundtrip(ctx *cli.Context) error {
	in, err := inputArg(ctx)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	raw, err := huffman.Compress(data).MarshalBinary()
	if err != nil {
		return err
	}
	c, err := huffman.ParseContainer(raw)
	if err != nil {
		return err
	}
	restored, err := huffman.Decompress(c)
	if err != nil {
		return err
	}
	if !bytes.Equal(data, restored) {
		return fmt.Errorf("round trip mismatch: %d bytes in, %d bytes back", len(data), len(restored))
	}
	fmt.Printf("%s: ok, %d bytes -> %d bytes (ratio %.3f)\n", in, len(data), len(raw), c.Ratio())
	return nil
}
