package flac

import (
	"errors"
	"fmt"

	"github.com/mbrakken/murfie-backup/internal/binary"
	"github.com/mbrakken/murfie-backup/internal/types"
)

// Block is one metadata block as found by Walk.
type Block struct {
	Header
	Offset int64  // offset of the block header
	Data   []byte // body, len(Data) == Header.Length
}

// Walk enumerates the metadata blocks of data and returns them with the
// offset at which the audio frames begin.
func Walk(data []byte, path string) ([]Block, int64, error) {
	return walk(binary.NewSafeReader(data, path))
}

func walk(sr *binary.SafeReader) ([]Block, int64, error) {
	if err := checkMarker(sr); err != nil {
		return nil, 0, err
	}

	var blocks []Block
	offset := int64(len(Marker))
	for {
		if offset >= sr.Size() {
			return nil, 0, &types.TruncatedContainerError{
				Path:   sr.Path(),
				Reason: "no last metadata block before end of data",
				Offset: offset,
				Size:   sr.Size(),
			}
		}

		hdr, bodyOffset, err := decodeHeader(sr, offset)
		if err != nil {
			return nil, 0, &types.TruncatedContainerError{
				Path:   sr.Path(),
				Reason: "incomplete metadata block header",
				Offset: offset,
				Size:   sr.Size(),
			}
		}

		body, err := sr.Slice(bodyOffset, int(hdr.Length), hdr.Type.String()+" block")
		if err != nil {
			return nil, 0, &types.TruncatedContainerError{
				Path: sr.Path(),
				Reason: fmt.Sprintf("%s block declares %d bytes but only %d remain",
					hdr.Type, hdr.Length, sr.Size()-bodyOffset),
				Offset: offset,
				Size:   sr.Size(),
			}
		}

		blocks = append(blocks, Block{Header: hdr, Offset: offset, Data: body})
		offset = bodyOffset + int64(hdr.Length)

		if hdr.IsLast {
			return blocks, offset, nil
		}
	}
}

// checkMarker verifies the "fLaC" stream marker.
func checkMarker(sr *binary.SafeReader) error {
	magic, err := sr.Slice(0, len(Marker), "FLAC marker")
	if err != nil {
		return &types.FormatError{Path: sr.Path(), Magic: sr.Tail(0)}
	}
	if string(magic) != Marker {
		return &types.FormatError{Path: sr.Path(), Magic: magic}
	}
	return nil
}

// Parse decodes every metadata block of data into a Container.
//
// Structural problems (missing marker, truncation, a malformed STREAMINFO)
// fail the whole parse. Problems confined to one block are returned as
// warnings and the block is preserved as raw data.
func Parse(data []byte, path string) (*Container, []types.Warning, error) {
	sr := binary.NewSafeReader(data, path)

	blocks, audioOffset, err := walk(sr)
	if err != nil {
		return nil, nil, err
	}

	c := &Container{}
	var warnings []types.Warning
	for _, b := range blocks {
		ws, err := c.add(sr, b)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, ws...)
	}
	c.Audio = sr.Tail(audioOffset)

	if c.StreamInfo == nil {
		warnings = append(warnings, types.Warning{
			Stage:   "metadata",
			Kind:    types.WarningMissingStreamInfo,
			Message: "no STREAMINFO block; the container cannot be re-encoded",
		})
	}

	return c, warnings, nil
}

// add dispatches one block to its decoder and stores the result.
func (c *Container) add(sr *binary.SafeReader, b Block) ([]types.Warning, error) {
	body, err := sr.Sub(b.Offset+headerSize, len(b.Data), b.Type.String()+" block")
	if err != nil {
		return nil, err
	}

	switch b.Type {
	case TypeStreamInfo:
		if c.StreamInfo != nil {
			return []types.Warning{duplicate(b, "ignored")}, nil
		}
		si, err := DecodeStreamInfo(b.Data)
		if err != nil {
			return nil, &types.CorruptedBlockError{Block: b.Type.String(), Reason: err.Error(), Offset: b.Offset}
		}
		c.StreamInfo = si

	case TypePadding:
		if c.Padding != nil {
			c.Padding.Length += len(b.Data)
			return []types.Warning{duplicate(b, "merged into the first")}, nil
		}
		c.Padding = &Padding{Length: len(b.Data)}

	case TypeApplication:
		app, err := DecodeApplication(b.Data)
		if err != nil {
			return c.keepRaw(b, err), nil
		}
		c.Applications = append(c.Applications, *app)

	case TypeSeekTable:
		if c.SeekTable != nil {
			return []types.Warning{duplicate(b, "ignored")}, nil
		}
		c.SeekTable = &RawBlock{Type: b.Type, Data: b.Data}

	case TypeVorbisComment:
		// A comment block kept raw still holds the singleton slot, so a
		// re-encoded file resolves duplicates the same way.
		if c.VorbisComment != nil || c.hasRaw(TypeVorbisComment) {
			return []types.Warning{duplicate(b, "ignored")}, nil
		}
		vc, err := decodeVorbisComment(body)
		if err != nil {
			return c.keepRaw(b, err), nil
		}
		c.VorbisComment = vc

	case TypeCueSheet:
		if c.CueSheet != nil {
			return []types.Warning{duplicate(b, "ignored")}, nil
		}
		c.CueSheet = &RawBlock{Type: b.Type, Data: b.Data}

	case TypePicture:
		pic, ws, err := decodePicture(body)
		if err != nil {
			return c.keepRaw(b, err), nil
		}
		for i := range ws {
			ws[i].Offset = b.Offset
		}
		c.Pictures = append(c.Pictures, *pic)
		return ws, nil

	default:
		c.Unspecified = append(c.Unspecified, RawBlock{Type: b.Type, Data: b.Data})
		return []types.Warning{{
			Stage:   "metadata",
			Kind:    types.WarningUnspecifiedBlock,
			Message: fmt.Sprintf("block type %d is reserved; kept as %d raw bytes", uint8(b.Type), len(b.Data)),
			Offset:  b.Offset,
		}}, nil
	}

	return nil, nil
}

// keepRaw preserves a block whose body failed to decode.
func (c *Container) keepRaw(b Block, err error) []types.Warning {
	c.Unspecified = append(c.Unspecified, RawBlock{Type: b.Type, Data: b.Data})

	msg := err.Error()
	var oob *types.OutOfBoundsError
	if errors.As(err, &oob) {
		msg = fmt.Sprintf("%s runs past the end of the block", oob.What)
	}
	return []types.Warning{{
		Stage:   "metadata",
		Kind:    types.WarningBlockDecode,
		Message: fmt.Sprintf("failed to parse %s: %s; kept as raw bytes", b.Type, msg),
		Offset:  b.Offset,
	}}
}

func duplicate(b Block, outcome string) types.Warning {
	return types.Warning{
		Stage:   "metadata",
		Kind:    types.WarningDuplicateBlock,
		Message: fmt.Sprintf("additional %s block %s", b.Type, outcome),
		Offset:  b.Offset,
	}
}
