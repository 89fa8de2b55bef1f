package flac

import (
	"github.com/mbrakken/murfie-backup/internal/binary"
	"github.com/mbrakken/murfie-backup/internal/types"
)

// Marker is the stream marker every FLAC file starts with.
const Marker = "fLaC"

const headerSize = 4

// Header is a metadata block header.
//
// On disk it is one byte holding the last-block flag (high bit) and the
// block type (low 7 bits), followed by the body length as a 24-bit
// big-endian integer.
type Header struct {
	IsLast bool
	Type   BlockType
	Length uint32
}

// decodeHeader reads the header at off and returns it with the offset of
// the block body. The stream marker is checked once by the walker, not here.
func decodeHeader(sr *binary.SafeReader, off int64) (Header, int64, error) {
	typeByte, err := binary.Read[uint8](sr, off, "metadata block header")
	if err != nil {
		return Header{}, off, err
	}
	length, err := binary.ReadUint24(sr, off+1, "metadata block length")
	if err != nil {
		return Header{}, off, err
	}

	return Header{
		IsLast: typeByte&0x80 != 0,
		Type:   BlockType(typeByte & 0x7F),
		Length: length,
	}, off + headerSize, nil
}

// Bytes encodes the header.
func (h Header) Bytes() ([headerSize]byte, error) {
	var b [headerSize]byte
	if h.Length > types.MaxBlockLength {
		return b, &types.BlockTooLargeError{Block: h.Type.String(), Length: int(h.Length)}
	}

	b[0] = byte(h.Type) & 0x7F
	if h.IsLast {
		b[0] |= 0x80
	}
	b[1] = byte(h.Length >> 16)
	b[2] = byte(h.Length >> 8)
	b[3] = byte(h.Length)
	return b, nil
}

// writeBlock writes a header for body followed by body.
func writeBlock(sw *binary.SafeWriter, typ BlockType, body []byte, last bool) error {
	if len(body) > types.MaxBlockLength {
		return &types.BlockTooLargeError{Block: typ.String(), Length: len(body)}
	}

	hdr, err := Header{IsLast: last, Type: typ, Length: uint32(len(body))}.Bytes()
	if err != nil {
		return err
	}
	if err := sw.WriteBytes(hdr[:]); err != nil {
		return err
	}
	return sw.WriteBytes(body)
}
