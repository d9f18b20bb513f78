package bmp

import "errors"

// Errors returned by the decoder. Every error produced while decoding wraps
// exactly one of these and can be matched with errors.Is.
var (
	// ErrOutOfBounds means a read or skip ran past the end of the input,
	// i.e. the file is truncated or its header lies about its size.
	ErrOutOfBounds = errors.New("bmp: unexpected end of data")

	// ErrInvalidMagic means the input does not start with "BM".
	ErrInvalidMagic = errors.New("bmp: invalid file signature")

	// ErrUnsupportedHeaderVariant means the DIB header length is not one of
	// the BITMAPINFOHEADER family sizes.
	ErrUnsupportedHeaderVariant = errors.New("bmp: unsupported DIB header length")

	// ErrUnsupportedBitDepth means the image is not 24 or 32 bits per pixel.
	ErrUnsupportedBitDepth = errors.New("bmp: unsupported number of bits per pixel")
)
