package types

import "fmt"

// OutOfBoundsError is returned when a read would run past the end of a buffer.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// FormatError is returned when the input does not start with the "fLaC" marker.
type FormatError struct {
	Path  string
	Magic []byte
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: not a FLAC stream: invalid marker %q", e.Path, e.Magic)
}

// TruncatedContainerError is returned when a block runs past the end of the
// buffer or the buffer ends before the last metadata block.
type TruncatedContainerError struct {
	Path   string
	Reason string
	Offset int64
	Size   int64
}

func (e *TruncatedContainerError) Error() string {
	return fmt.Sprintf("%s: truncated container at offset %d (size: %d): %s",
		e.Path, e.Offset, e.Size, e.Reason)
}

// CorruptedBlockError is returned when a mandatory block cannot be decoded.
type CorruptedBlockError struct {
	Block  string
	Reason string
	Offset int64
}

func (e *CorruptedBlockError) Error() string {
	return fmt.Sprintf("corrupted %s block at offset %d: %s", e.Block, e.Offset, e.Reason)
}

// MissingStreamInfoError is returned when a container without STREAMINFO
// is encoded.
type MissingStreamInfoError struct{}

func (e *MissingStreamInfoError) Error() string {
	return "missing required STREAMINFO block"
}

// BlockTooLargeError is returned when an encoded block body does not fit
// the 24-bit length field.
type BlockTooLargeError struct {
	Block  string
	Length int
}

func (e *BlockTooLargeError) Error() string {
	return fmt.Sprintf("%s block body of %d bytes exceeds the maximum of %d", e.Block, e.Length, MaxBlockLength)
}

// FieldRangeError is returned when a value cannot be represented in its
// encoded bit width.
type FieldRangeError struct {
	Field string
	Value uint64
	Min   uint64
	Max   uint64
}

func (e *FieldRangeError) Error() string {
	return fmt.Sprintf("%s: value %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// UnsupportedImageError is returned when cover data is not a JPEG, PNG or
// GIF image.
type UnsupportedImageError struct {
	MIMEType string // detected content type
	Reason   string
}

func (e *UnsupportedImageError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported image (%s): %s", e.MIMEType, e.Reason)
	}
	return fmt.Sprintf("unsupported image (%s)", e.MIMEType)
}

// MaxBlockLength is the largest body a metadata block header can describe.
const MaxBlockLength = 1<<24 - 1

// WarningKind classifies a non-fatal issue.
type WarningKind int

const (
	WarningOther WarningKind = iota
	WarningUnspecifiedBlock
	WarningPayloadLengthMismatch
	WarningBlockDecode
	WarningDuplicateBlock
	WarningMissingStreamInfo
	WarningArtworkTooLarge
)

// String returns the kind's short name.
func (k WarningKind) String() string {
	switch k {
	case WarningUnspecifiedBlock:
		return "unspecified block"
	case WarningPayloadLengthMismatch:
		return "payload length mismatch"
	case WarningBlockDecode:
		return "block decode"
	case WarningDuplicateBlock:
		return "duplicate block"
	case WarningMissingStreamInfo:
		return "missing streaminfo"
	case WarningArtworkTooLarge:
		return "artwork too large"
	default:
		return "other"
	}
}

// Warning represents a non-fatal issue encountered while decoding.
//
// Warnings mark single-block anomalies that do not stop the rest of the
// container from being decoded, such as:
//   - A reserved block type that is kept as opaque bytes
//   - A picture whose image length does not match its declared length
//   - A block body that could not be interpreted
type Warning struct {
	// Stage where the warning occurred
	Stage string // "metadata", "picture", "artwork"

	// Kind of anomaly
	Kind WarningKind

	// Warning message
	Message string

	// Offset of the block header (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
