package main

import (
	"io"

	bmp "github.com/entooone/go-dibbmp"
	"gopkg.in/yaml.v2"
)

type report struct {
	Width        uint32 `yaml:"width"`
	Height       uint32 `yaml:"height"`
	Depth        uint16 `yaml:"depth"`
	HeaderLength uint32 `yaml:"header_length"`
	Pixels       uint64 `yaml:"pixels"`
	Matches      *int   `yaml:"matches,omitempty"`
}

func newReport(info bmp.InfoHeader, matches *int) report {
	return report{
		Width:        info.Width,
		Height:       info.Height,
		Depth:        info.Depth,
		HeaderLength: info.HeaderLen,
		Pixels:       uint64(info.Width) * uint64(info.Height),
		Matches:      matches,
	}
}

func writeReport(w io.Writer, r report) error {
	out, err := yaml.Marshal(&r)
	if err != nil {
		return err
	}

	_, err = w.Write(out)
	return err
}
