package flac

import (
	"fmt"

	"github.com/mbrakken/murfie-backup/internal/types"
)

// Padding is a PADDING block. Its body is Length zero bytes.
type Padding struct {
	Length int
}

// Encode returns Length zero bytes.
func (p *Padding) Encode() ([]byte, error) {
	switch {
	case p.Length < 0:
		return nil, fmt.Errorf("negative padding length %d", p.Length)
	case p.Length > types.MaxBlockLength:
		return nil, &types.BlockTooLargeError{Block: TypePadding.String(), Length: p.Length}
	}
	return make([]byte, p.Length), nil
}

// RawBlock is a block kept as its original body: SEEKTABLE, CUESHEET,
// reserved types and blocks that could not be decoded.
type RawBlock struct {
	Type BlockType
	Data []byte
}

// Encode returns the stored body.
func (r *RawBlock) Encode() ([]byte, error) {
	return r.Data, nil
}
