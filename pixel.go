package bmp

import "fmt"

// Pixel is a single decoded color. Images stored with 24 bits per pixel
// carry no alpha channel and decode with Alpha set to 0.
type Pixel struct {
	Red   uint8
	Green uint8
	Blue  uint8
	Alpha uint8
}

// rowPadding is the number of filler bytes skipped after every stored row.
// It is width%4 for both supported depths, which matches the general
// 4-byte alignment rule at 24 bits per pixel only.
func rowPadding(width uint32) int {
	return int(width % 4)
}

// readPixelArray decodes info.Height rows stored bottom-up and returns them
// top-down.
func readPixelArray(c *cursor, info InfoHeader) ([][]Pixel, error) {
	bpp := info.bytesPerPixel()
	pad := rowPadding(info.Width)

	// refuse to allocate a grid the remaining data cannot fill
	rowLen := uint64(info.Width)*uint64(bpp) + uint64(pad)
	if rowLen > 0 && uint64(info.Height) > uint64(c.remaining())/rowLen {
		return nil, fmt.Errorf("%w: pixel array needs %d rows of %d bytes (have: %d bytes)",
			ErrOutOfBounds, info.Height, rowLen, c.remaining())
	}

	rows := make([][]Pixel, info.Height)
	for y := range rows {
		row := make([]Pixel, info.Width)

		for x := range row {
			p, err := c.readBytes(bpp)
			if err != nil {
				return nil, err
			}

			// BGR order, led by alpha at 32 bits per pixel
			if bpp == 4 {
				row[x] = Pixel{Alpha: p[0], Blue: p[1], Green: p[2], Red: p[3]}
			} else {
				row[x] = Pixel{Blue: p[0], Green: p[1], Red: p[2]}
			}
		}

		if err := c.advance(pad); err != nil {
			return nil, err
		}

		rows[len(rows)-1-y] = row
	}

	return rows, nil
}
