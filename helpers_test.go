package bmp

import "encoding/binary"

// bmpFile describes a synthetic BMP file for tests.
type bmpFile struct {
	headerLen uint32
	width     uint32
	height    uint32
	planes    uint16
	depth     uint16
	pixels    []byte // stored pixel array, padding included
}

func (f bmpFile) bytes() []byte {
	le := binary.LittleEndian

	// rejected variants shorter than BITMAPINFOHEADER still get 40 bytes
	b := make([]byte, fileHeaderLen+max(int(f.headerLen), 40))
	b[0], b[1] = 'B', 'M'
	le.PutUint32(b[2:6], uint32(len(b)+len(f.pixels)))
	le.PutUint32(b[10:14], uint32(len(b)))

	dib := b[fileHeaderLen:]
	le.PutUint32(dib[0:4], f.headerLen)
	le.PutUint32(dib[4:8], f.width)
	le.PutUint32(dib[8:12], f.height)
	le.PutUint16(dib[12:14], f.planes)
	le.PutUint16(dib[14:16], f.depth)
	le.PutUint32(dib[20:24], uint32(len(f.pixels)))

	return append(b, f.pixels...)
}

// bgrRows packs rows of pixels, given in storage order, as 24-bit BGR data
// followed by width%4 padding bytes.
func bgrRows(rows [][]Pixel) []byte {
	var b []byte
	for _, row := range rows {
		for _, p := range row {
			b = append(b, p.Blue, p.Green, p.Red)
		}
		b = append(b, make([]byte, len(row)%4)...)
	}
	return b
}

// abgrRows is bgrRows for 32-bit data, alpha first.
func abgrRows(rows [][]Pixel) []byte {
	var b []byte
	for _, row := range rows {
		for _, p := range row {
			b = append(b, p.Alpha, p.Blue, p.Green, p.Red)
		}
		b = append(b, make([]byte, len(row)%4)...)
	}
	return b
}

var (
	red   = Pixel{Red: 0xff}
	green = Pixel{Green: 0xff}
	blue  = Pixel{Blue: 0xff}
	white = Pixel{Red: 0xff, Green: 0xff, Blue: 0xff}
)
