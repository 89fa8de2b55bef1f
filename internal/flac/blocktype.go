package flac

import "fmt"

// BlockType is the 7-bit type code of a metadata block.
type BlockType uint8

// Metadata block types.
const (
	TypeStreamInfo BlockType = iota
	TypePadding
	TypeApplication
	TypeSeekTable
	TypeVorbisComment
	TypeCueSheet
	TypePicture
)

// TypeInvalid is reserved by the format to avoid confusion with frame sync
// codes. It is handled like any other uninterpreted type.
const TypeInvalid BlockType = 127

// String returns the block type name as used by the FLAC format.
func (t BlockType) String() string {
	switch t {
	case TypeStreamInfo:
		return "STREAMINFO"
	case TypePadding:
		return "PADDING"
	case TypeApplication:
		return "APPLICATION"
	case TypeSeekTable:
		return "SEEKTABLE"
	case TypeVorbisComment:
		return "VORBIS_COMMENT"
	case TypeCueSheet:
		return "CUESHEET"
	case TypePicture:
		return "PICTURE"
	case TypeInvalid:
		return "INVALID"
	default:
		return fmt.Sprintf("UNSPECIFIED(%d)", uint8(t))
	}
}

// IsUnspecified reports whether t is outside the assigned codes 0-6.
func (t BlockType) IsUnspecified() bool {
	return t > TypePicture
}
