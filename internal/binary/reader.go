// Package binary provides type-safe binary reading primitives with bounds checking
package binary

import (
	"encoding/binary"

	"github.com/mbrakken/murfie-backup/internal/types"
)

// SafeReader wraps an in-memory buffer with bounds checking and helpful error messages.
//
// Offsets passed to a SafeReader are relative to its buffer; errors report
// them relative to the outermost buffer so they point at the right place in
// the file.
type SafeReader struct {
	data []byte
	path string
	base int64
}

// NewSafeReader creates a new SafeReader over data.
// An empty path is reported as "<memory>".
func NewSafeReader(data []byte, path string) *SafeReader {
	if path == "" {
		path = "<memory>"
	}
	return &SafeReader{
		data: data,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the length of the underlying buffer.
func (sr *SafeReader) Size() int64 {
	return int64(len(sr.data))
}

// Base returns the absolute offset of this reader's first byte.
func (sr *SafeReader) Base() int64 {
	return sr.base
}

// Slice returns n bytes at the given offset without copying.
func (sr *SafeReader) Slice(off int64, n int, what string) ([]byte, error) {
	size := sr.Size()
	if n < 0 || off < 0 || off+int64(n) > size {
		return nil, &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: sr.base + off,
			Length: n,
			Size:   sr.base + size,
		}
	}
	return sr.data[off : off+int64(n) : off+int64(n)], nil
}

// Sub returns a reader restricted to n bytes starting at off.
func (sr *SafeReader) Sub(off int64, n int, what string) (*SafeReader, error) {
	b, err := sr.Slice(off, n, what)
	if err != nil {
		return nil, err
	}
	return &SafeReader{data: b, path: sr.path, base: sr.base + off}, nil
}

// Tail returns everything from off to the end of the buffer.
func (sr *SafeReader) Tail(off int64) []byte {
	if off >= sr.Size() {
		return nil
	}
	return sr.data[off:]
}

// Read reads a big-endian value of type T from the given offset.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, BigEndian)
}

// ReadUint24 reads a 24-bit big-endian value from the given offset.
func ReadUint24(sr *SafeReader, off int64, what string) (uint32, error) {
	b, err := sr.Slice(off, 3, what)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// Cursor is a read position within a SafeReader.
//
// Cursor is a value: every read returns the advanced cursor and leaves the
// receiver untouched.
type Cursor struct {
	sr  *SafeReader
	off int64
}

// NewCursor creates a cursor positioned at offset.
func NewCursor(sr *SafeReader, offset int64) Cursor {
	return Cursor{sr: sr, off: offset}
}

// Offset returns the current offset relative to the reader.
func (c Cursor) Offset() int64 {
	return c.off
}

// Remaining returns the number of bytes after the cursor.
func (c Cursor) Remaining() int64 {
	if rem := c.sr.Size() - c.off; rem > 0 {
		return rem
	}
	return 0
}

// Skip returns the cursor advanced by n bytes.
func (c Cursor) Skip(n int64) Cursor {
	c.off += n
	return c
}

// Bytes reads n bytes without copying.
func (c Cursor) Bytes(n int, what string) ([]byte, Cursor, error) {
	b, err := c.sr.Slice(c.off, n, what)
	if err != nil {
		return nil, c, err
	}
	return b, c.Skip(int64(n)), nil
}

// String reads a string of the given length.
func (c Cursor) String(n int, what string) (string, Cursor, error) {
	b, next, err := c.Bytes(n, what)
	if err != nil {
		return "", c, err
	}
	return string(b), next, nil
}

// Rest returns every byte after the cursor and a cursor at the end.
func (c Cursor) Rest() ([]byte, Cursor) {
	b := c.sr.Tail(c.off)
	return b, c.Skip(int64(len(b)))
}

// ReadValue reads a big-endian value at the cursor.
func ReadValue[T uint8 | uint16 | uint32 | uint64](c Cursor, what string) (T, Cursor, error) {
	return readValue[T](c, what, BigEndian)
}

// ReadValueLE reads a little-endian value at the cursor.
func ReadValueLE[T uint8 | uint16 | uint32 | uint64](c Cursor, what string) (T, Cursor, error) {
	return readValue[T](c, what, LittleEndian)
}

func readValue[T uint8 | uint16 | uint32 | uint64](c Cursor, what string, endian Endianness) (T, Cursor, error) {
	val, err := ReadEndian[T](c.sr, c.off, what, endian)
	if err != nil {
		return val, c, err
	}
	return val, c.Skip(int64(sizeOf[T]())), nil
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	cur Cursor
	err error
}

// NewChainReader creates a new ChainReader starting at c.
func NewChainReader(c Cursor) *ChainReader {
	return &ChainReader{cur: c}
}

// ReadChained reads a big-endian value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	var zero T
	if cr.err != nil {
		return zero
	}

	val, next, err := ReadValue[T](cr.cur, what)
	if err != nil {
		cr.err = err
		return zero
	}
	cr.cur = next
	return val
}

// Bytes reads n raw bytes, accumulating any error.
func (cr *ChainReader) Bytes(n int, what string) []byte {
	if cr.err != nil {
		return nil
	}

	b, next, err := cr.cur.Bytes(n, what)
	if err != nil {
		cr.err = err
		return nil
	}
	cr.cur = next
	return b
}

// Skip advances past n bytes, failing if they are not present.
func (cr *ChainReader) Skip(n int, what string) {
	_ = cr.Bytes(n, what)
}

// Cursor returns the current position.
func (cr *ChainReader) Cursor() Cursor {
	return cr.cur
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}

func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

func decode[T uint8 | uint16 | uint32 | uint64](buf []byte, order binary.ByteOrder) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(buf[0])
	case uint16:
		return T(order.Uint16(buf))
	case uint32:
		return T(order.Uint32(buf))
	default:
		return T(order.Uint64(buf))
	}
}
