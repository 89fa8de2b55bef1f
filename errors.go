package backup

import (
	"fmt"

	"github.com/mbrakken/murfie-backup/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
type OutOfBoundsError = types.OutOfBoundsError

// FormatError is returned when data does not start with the FLAC marker.
type FormatError = types.FormatError

// TruncatedContainerError is returned when the metadata section ends early.
type TruncatedContainerError = types.TruncatedContainerError

// CorruptedBlockError is returned when STREAMINFO cannot be decoded.
type CorruptedBlockError = types.CorruptedBlockError

// MissingStreamInfoError is returned when a Track without STREAMINFO is
// encoded.
type MissingStreamInfoError = types.MissingStreamInfoError

// BlockTooLargeError is returned when a block does not fit a 24-bit length.
type BlockTooLargeError = types.BlockTooLargeError

// FieldRangeError is returned when a STREAMINFO field is out of range.
type FieldRangeError = types.FieldRangeError

// UnsupportedImageError is returned by SetCover for non-image data.
type UnsupportedImageError = types.UnsupportedImageError

// Warning is an alias to types.Warning.
type Warning = types.Warning

// WarningKind is an alias to types.WarningKind.
type WarningKind = types.WarningKind

// Warning kinds.
const (
	WarningOther                 = types.WarningOther
	WarningUnspecifiedBlock      = types.WarningUnspecifiedBlock
	WarningPayloadLengthMismatch = types.WarningPayloadLengthMismatch
	WarningBlockDecode           = types.WarningBlockDecode
	WarningDuplicateBlock        = types.WarningDuplicateBlock
	WarningMissingStreamInfo     = types.WarningMissingStreamInfo
	WarningArtworkTooLarge       = types.WarningArtworkTooLarge
)

// StrictParsingError is returned by Decode under WithStrictParsing when
// decoding produced warnings.
type StrictParsingError struct {
	Warnings []Warning
}

func (e *StrictParsingError) Error() string {
	if len(e.Warnings) == 1 {
		return "strict parsing failed: " + e.Warnings[0].Message
	}
	return fmt.Sprintf("strict parsing failed: %s (%d more)", e.Warnings[0].Message, len(e.Warnings)-1)
}
