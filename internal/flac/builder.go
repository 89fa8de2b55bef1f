package flac

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mbrakken/murfie-backup/internal/binary"
	"github.com/mbrakken/murfie-backup/internal/types"
)

// encodedBlock is a block body ready to be framed with a header.
type encodedBlock struct {
	typ  BlockType
	body []byte
}

// Encode rebuilds a complete FLAC file from c.
//
// Blocks are written in a fixed order: STREAMINFO, APPLICATION,
// CUESHEET, SEEKTABLE, VORBIS_COMMENT, PICTURE, reserved types and
// finally PADDING. A raw VORBIS_COMMENT is dropped when c carries a decoded
// one. Every block is re-encoded from c; the last-block flag
// is set on the final block only, whatever was read originally. The
// audio frames are appended unchanged.
func Encode(c *Container) ([]byte, error) {
	blocks, err := c.encodeBlocks()
	if err != nil {
		return nil, err
	}

	size := len(Marker) + len(c.Audio)
	for _, b := range blocks {
		size += headerSize + len(b.body)
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	if err := writeContainer(binary.NewSafeWriter(buf), blocks, c.Audio); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the encoded file to w. Nothing is written unless every
// block encodes successfully.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	blocks, err := c.encodeBlocks()
	if err != nil {
		return 0, err
	}

	sw := binary.NewSafeWriter(w)
	err = writeContainer(sw, blocks, c.Audio)
	return sw.Offset(), err
}

func writeContainer(sw *binary.SafeWriter, blocks []encodedBlock, audio []byte) error {
	if err := sw.WriteString(Marker); err != nil {
		return err
	}
	for i, b := range blocks {
		if err := writeBlock(sw, b.typ, b.body, i == len(blocks)-1); err != nil {
			return err
		}
	}
	return sw.WriteBytes(audio)
}

// encodeBlocks encodes every block of c in output order.
func (c *Container) encodeBlocks() ([]encodedBlock, error) {
	if c == nil || c.StreamInfo == nil {
		return nil, &types.MissingStreamInfoError{}
	}

	type source struct {
		typ BlockType
		enc interface{ Encode() ([]byte, error) }
	}

	sources := []source{{TypeStreamInfo, c.StreamInfo}}
	for i := range c.Applications {
		sources = append(sources, source{TypeApplication, &c.Applications[i]})
	}
	if c.CueSheet != nil {
		sources = append(sources, source{TypeCueSheet, c.CueSheet})
	}
	if c.SeekTable != nil {
		sources = append(sources, source{TypeSeekTable, c.SeekTable})
	}
	if c.VorbisComment != nil {
		sources = append(sources, source{TypeVorbisComment, c.VorbisComment})
	}
	for i := range c.Pictures {
		sources = append(sources, source{TypePicture, &c.Pictures[i]})
	}
	for i := range c.Unspecified {
		if c.Unspecified[i].Type == TypeVorbisComment && c.VorbisComment != nil {
			continue
		}
		sources = append(sources, source{c.Unspecified[i].Type, &c.Unspecified[i]})
	}
	if c.Padding != nil {
		sources = append(sources, source{TypePadding, c.Padding})
	}

	blocks := make([]encodedBlock, 0, len(sources))
	for _, s := range sources {
		body, err := s.enc.Encode()
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", s.typ, err)
		}
		if len(body) > types.MaxBlockLength {
			return nil, &types.BlockTooLargeError{Block: s.typ.String(), Length: len(body)}
		}
		blocks = append(blocks, encodedBlock{typ: s.typ, body: body})
	}
	return blocks, nil
}
