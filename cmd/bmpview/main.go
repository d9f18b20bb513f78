// Command bmpview decodes a BMP file and prints it as a letter map, a YAML
// summary, or the number of pixels matching an expression.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	bmp "github.com/entooone/go-dibbmp"
)

type options struct {
	format  string
	legend  string
	where   string
	maxRows uint
	verbose bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bmpview: ")

	var opts options
	flag.StringVar(&opts.format, "format", "grid", "Output format: grid or yaml")
	flag.StringVar(&opts.legend, "legend", "", "YAML legend file mapping colors to letters")
	flag.StringVar(&opts.where, "where", "", "Count pixels matching an expression over red, green, blue, alpha, row, col")
	flag.UintVar(&opts.maxRows, "max-rows", 1<<16, "Refuse images declaring more rows than this; 0 means no limit")
	flag.BoolVar(&opts.verbose, "v", false, "Log each decoding step")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: bmpview [flags] <file.bmp|file.bmp.zst>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), opts, os.Stdout); err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
}

func run(path string, opts options, w io.Writer) error {
	logf := func(format string, args ...interface{}) {
		if opts.verbose {
			log.Printf(format, args...)
		}
	}

	if opts.legend != "" && opts.format != "grid" {
		return fmt.Errorf("-legend applies to the grid format only (got: -format %s)", opts.format)
	}

	data, err := readInput(path)
	if err != nil {
		return err
	}
	logf("read %d bytes from %s", len(data), path)

	info, err := bmp.DecodeHeader(data)
	if err != nil {
		return err
	}
	if opts.maxRows > 0 && uint64(info.Height) > uint64(opts.maxRows) {
		return fmt.Errorf("image declares %d rows, more than -max-rows %d", info.Height, opts.maxRows)
	}

	img, err := bmp.DecodeBytes(data)
	if err != nil {
		return err
	}
	logf("decoded %dx%d image, %d bits per pixel", img.Width, img.Height, img.Depth)

	var matches *int
	if opts.where != "" {
		n, err := countWhere(opts.where, img)
		if err != nil {
			return err
		}
		logf("%d pixels match %q", n, opts.where)
		matches = &n
	}

	switch opts.format {
	case "grid":
		l := defaultLegend()
		if opts.legend != "" {
			if l, err = loadLegend(opts.legend); err != nil {
				return err
			}
			logf("loaded %d legend entries from %s", len(l.Colors), opts.legend)
		}
		if err := writeGrid(w, img, l); err != nil {
			return err
		}
		if matches != nil {
			_, err = fmt.Fprintf(w, "%d\n", *matches)
		}
		return err

	case "yaml":
		return writeReport(w, newReport(info, matches))

	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
}
