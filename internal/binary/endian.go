package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian is used by block headers and every block body except
	// VORBIS_COMMENT.
	BigEndian Endianness = iota

	// LittleEndian is used for VORBIS_COMMENT lengths.
	LittleEndian
)

// ByteOrder returns the encoding/binary byte order for e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ReadEndian reads a value of type T at off in the given byte order.
//
// Decoders normally go through a Cursor; this is the shared primitive.
func ReadEndian[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string, endian Endianness) (T, error) {
	buf, err := sr.Slice(off, sizeOf[T](), what)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](buf, endian.ByteOrder()), nil
}
