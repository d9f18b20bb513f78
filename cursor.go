package bmp

import "fmt"

// cursor reads sequentially from an immutable byte slice. A failed read
// leaves pos where it was.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(b []byte) *cursor {
	return &cursor{buf: b}
}

func (c *cursor) offset() int {
	return c.pos
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) advance(n int) error {
	if n < 0 || n > c.remaining() {
		return fmt.Errorf("%w (offset: %d, need: %d, have: %d)", ErrOutOfBounds, c.pos, n, c.remaining())
	}

	c.pos += n

	return nil
}

// readBytes returns a view into the underlying buffer; callers must not
// modify it.
func (c *cursor) readBytes(n int) ([]byte, error) {
	start := c.pos
	if err := c.advance(n); err != nil {
		return nil, err
	}

	return c.buf[start:c.pos:c.pos], nil
}

func (c *cursor) readUint8() (uint8, error) {
	b, err := c.readBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// little endian regardless of host byte order
func (c *cursor) readUint16() (uint16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}

	return uint16(b[0]) | uint16(b[1])<<8, nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}

	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}
