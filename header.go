package bmp

import "fmt"

const (
	fileHeaderLen = 14

	// width, height, planes and bit count, counting the length field itself
	infoHeaderPrefixLen = 16
)

// InfoHeader holds the DIB header fields the decoder interprets.
type InfoHeader struct {
	HeaderLen uint32 // declared length of the DIB header
	Width     uint32
	Height    uint32
	Depth     uint16 // bits per pixel, 24 or 32
}

func (h InfoHeader) bytesPerPixel() int {
	return int(h.Depth) / 8
}

// readFileHeader checks the signature and skips the rest of the file header.
// The stored file size and pixel array offset are not used; the pixel array
// is assumed to follow the DIB header directly.
func readFileHeader(c *cursor) error {
	if c.remaining() < fileHeaderLen {
		return fmt.Errorf("%w: file header needs %d bytes (got: %d)", ErrOutOfBounds, fileHeaderLen, c.remaining())
	}

	sig, err := c.readBytes(2)
	if err != nil {
		return err
	}

	if sig[0] != 'B' || sig[1] != 'M' {
		return fmt.Errorf("%w (got: %q)", ErrInvalidMagic, sig)
	}

	return c.advance(fileHeaderLen - 2)
}

func readInfoHeader(c *cursor) (InfoHeader, error) {
	var h InfoHeader

	length, err := c.readUint32()
	if err != nil {
		return InfoHeader{}, err
	}

	switch length {
	// BITMAPINFOHEADER, V2, V3, V4 and V5
	case 40, 52, 56, 108, 124:
	default:
		return InfoHeader{}, fmt.Errorf("%w (got: %d)", ErrUnsupportedHeaderVariant, length)
	}
	h.HeaderLen = length

	if h.Width, err = c.readUint32(); err != nil {
		return InfoHeader{}, err
	}
	if h.Height, err = c.readUint32(); err != nil {
		return InfoHeader{}, err
	}

	// color planes
	if err := c.advance(2); err != nil {
		return InfoHeader{}, err
	}

	if h.Depth, err = c.readUint16(); err != nil {
		return InfoHeader{}, err
	}

	switch h.Depth {
	case 24, 32:
	default:
		return InfoHeader{}, fmt.Errorf("%w (got: %d)", ErrUnsupportedBitDepth, h.Depth)
	}

	// compression, masks, color space and the rest are never interpreted
	if err := c.advance(int(length) - infoHeaderPrefixLen); err != nil {
		return InfoHeader{}, err
	}

	return h, nil
}

// DecodeHeader validates the file and DIB headers of b and returns the
// DIB header without decoding any pixels.
func DecodeHeader(b []byte) (InfoHeader, error) {
	c := newCursor(b)

	if err := readFileHeader(c); err != nil {
		return InfoHeader{}, err
	}

	return readInfoHeader(c)
}
