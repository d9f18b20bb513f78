package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	bmp "github.com/entooone/go-dibbmp"
	"gopkg.in/yaml.v2"
)

// legendEntry maps one exact RGB color to a letter. Alpha is not compared,
// since 24-bit images decode with an alpha of 0.
type legendEntry struct {
	Letter string `yaml:"letter"`
	Red    uint8  `yaml:"red"`
	Green  uint8  `yaml:"green"`
	Blue   uint8  `yaml:"blue"`
}

type legend struct {
	Colors []legendEntry `yaml:"colors"`
	Other  string        `yaml:"other"` // letter for colors not listed
}

func defaultLegend() legend {
	return legend{
		Colors: []legendEntry{
			{Letter: "R", Red: 255},
			{Letter: "Y", Red: 255, Green: 255},
			{Letter: "G", Green: 255},
			{Letter: "B", Blue: 255},
			{Letter: "D"},
			{Letter: "W", Red: 255, Green: 255, Blue: 255},
		},
		Other: "X",
	}
}

func loadLegend(path string) (legend, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return legend{}, fmt.Errorf("failed to read legend file '%s': %w", path, err)
	}

	var l legend
	if err := yaml.UnmarshalStrict(data, &l); err != nil {
		return legend{}, fmt.Errorf("failed to parse legend file '%s': %w", path, err)
	}

	for i, e := range l.Colors {
		if utf8.RuneCountInString(e.Letter) != 1 {
			return legend{}, fmt.Errorf("legend file '%s': entry %d: letter must be a single character (got: %q)", path, i, e.Letter)
		}
	}
	if l.Other == "" {
		l.Other = defaultLegend().Other
	}

	return l, nil
}

func (l legend) letter(p bmp.Pixel) string {
	for _, e := range l.Colors {
		if e.Red == p.Red && e.Green == p.Green && e.Blue == p.Blue {
			return e.Letter
		}
	}
	return l.Other
}

// writeGrid prints one letter per pixel, top row first.
func writeGrid(w io.Writer, img *bmp.Image, l legend) error {
	bw := bufio.NewWriter(w)
	for _, row := range img.Rows {
		for _, p := range row {
			bw.WriteString(l.letter(p))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
