package prim

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Cursor is a little-endian byte-buffer cursor shared by the reader and
// the writer. Reading past the end of the buffer panics: PRIM files are
// parsed in a trust-the-input regime and a bad offset is fatal. Writing
// past the end grows the buffer; writing after a Seek overwrites in
// place (used once, to patch the leading main offset).
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps an existing buffer for reading.
func NewCursor(data []byte) *Cursor {
	return &Cursor{buf: data}
}

// NewWriteCursor returns an empty cursor for serialization.
func NewWriteCursor() *Cursor {
	return &Cursor{}
}

// Pos returns the absolute cursor position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek moves the cursor to an absolute position.
func (c *Cursor) Seek(pos int) {
	c.pos = pos
}

// Bytes returns the underlying buffer.
func (c *Cursor) Bytes() []byte {
	return c.buf
}

func (c *Cursor) take(n int) []byte {
	if c.pos+n > len(c.buf) {
		panic(fmt.Sprintf("prim: read of %d bytes at %#x past end of buffer (%#x)", n, c.pos, len(c.buf)))
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b
}

func (c *Cursor) put(b []byte) {
	n := copy(c.buf[c.pos:], b)
	if n < len(b) {
		c.buf = append(c.buf, b[n:]...)
	}
	c.pos += len(b)
}

func (c *Cursor) ReadU8() uint8 {
	return c.take(1)[0]
}

func (c *Cursor) ReadU16() uint16 {
	return binary.LittleEndian.Uint16(c.take(2))
}

func (c *Cursor) ReadU32() uint32 {
	return binary.LittleEndian.Uint32(c.take(4))
}

func (c *Cursor) ReadU128() (lo, hi uint64) {
	b := c.take(16)
	return binary.LittleEndian.Uint64(b), binary.LittleEndian.Uint64(b[8:])
}

func (c *Cursor) ReadF32() float32 {
	return math.Float32frombits(c.ReadU32())
}

// ReadBytes reads n bytes into a fresh slice.
func (c *Cursor) ReadBytes(n int) []byte {
	b := make([]byte, n)
	copy(b, c.take(n))
	return b
}

func (c *Cursor) ReadU16s(n int) []uint16 {
	v := make([]uint16, n)
	for i := range v {
		v[i] = c.ReadU16()
	}
	return v
}

func (c *Cursor) ReadU32s(n int) []uint32 {
	v := make([]uint32, n)
	for i := range v {
		v[i] = c.ReadU32()
	}
	return v
}

func (c *Cursor) ReadF32s(n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = c.ReadF32()
	}
	return v
}

func (c *Cursor) WriteU8(v uint8) {
	c.put([]byte{v})
}

func (c *Cursor) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	c.put(b[:])
}

func (c *Cursor) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	c.put(b[:])
}

func (c *Cursor) WriteU128(lo, hi uint64) {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], lo)
	binary.LittleEndian.PutUint64(b[8:], hi)
	c.put(b[:])
}

func (c *Cursor) WriteF32(v float32) {
	c.WriteU32(math.Float32bits(v))
}

func (c *Cursor) WriteBytes(b []byte) {
	c.put(b)
}

func (c *Cursor) WriteU16s(v []uint16) {
	for _, x := range v {
		c.WriteU16(x)
	}
}

func (c *Cursor) WriteU32s(v []uint32) {
	for _, x := range v {
		c.WriteU32(x)
	}
}

func (c *Cursor) WriteF32s(v []float32) {
	for _, x := range v {
		c.WriteF32(x)
	}
}

// Align writes zero bytes until the position is a multiple of alignment.
func (c *Cursor) Align(alignment int) {
	for c.pos%alignment != 0 {
		c.WriteU8(0)
	}
}
