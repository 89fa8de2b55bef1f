package flac

import (
	"bytes"
	"fmt"

	"github.com/mbrakken/murfie-backup/internal/binary"
	"github.com/mbrakken/murfie-backup/internal/types"
)

// Picture holds a PICTURE block.
type Picture struct {
	Type          types.PictureType
	MIMEType      string // ASCII, "-->" when Data is a URL
	Description   string // UTF-8
	Width         uint32
	Height        uint32
	ColorDepth    uint32 // bits per pixel
	IndexedColors uint32 // 0 for non-indexed images
	Data          []byte
}

// DecodePicture decodes a PICTURE body.
//
// A declared image length that disagrees with the bytes present is not an
// error: the available bytes (at most the declared length) are returned
// together with a warning.
func DecodePicture(body []byte) (*Picture, []types.Warning, error) {
	return decodePicture(binary.NewSafeReader(body, ""))
}

func decodePicture(sr *binary.SafeReader) (*Picture, []types.Warning, error) {
	cr := binary.NewChainReader(binary.NewCursor(sr, 0))

	pic := &Picture{}
	pic.Type = types.PictureType(binary.ReadChained[uint32](cr, "picture type"))
	mimeLength := binary.ReadChained[uint32](cr, "MIME type length")
	pic.MIMEType = string(cr.Bytes(int(mimeLength), "MIME type"))
	descLength := binary.ReadChained[uint32](cr, "description length")
	pic.Description = string(cr.Bytes(int(descLength), "description"))
	pic.Width = binary.ReadChained[uint32](cr, "width")
	pic.Height = binary.ReadChained[uint32](cr, "height")
	pic.ColorDepth = binary.ReadChained[uint32](cr, "color depth")
	pic.IndexedColors = binary.ReadChained[uint32](cr, "indexed colors")
	dataLength := binary.ReadChained[uint32](cr, "picture data length")
	if err := cr.Error(); err != nil {
		return nil, nil, err
	}

	data, _ := cr.Cursor().Rest()
	var warnings []types.Warning
	if int64(len(data)) != int64(dataLength) {
		warnings = append(warnings, types.Warning{
			Stage:   "picture",
			Kind:    types.WarningPayloadLengthMismatch,
			Message: fmt.Sprintf("image data size %d does not match declared length %d", len(data), dataLength),
			Offset:  sr.Base(),
		})
		if int64(len(data)) > int64(dataLength) {
			data = data[:dataLength]
		}
	}
	pic.Data = data

	return pic, warnings, nil
}

// Encode returns the PICTURE body. The image length written is always
// len(Data).
func (p *Picture) Encode() ([]byte, error) {
	size := 32 + len(p.MIMEType) + len(p.Description) + len(p.Data)
	if size > types.MaxBlockLength {
		return nil, &types.BlockTooLargeError{Block: TypePicture.String(), Length: size}
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	sw := binary.NewSafeWriter(buf)

	_ = binary.Write(sw, uint32(p.Type))
	_ = binary.Write(sw, uint32(len(p.MIMEType)))
	_ = sw.WriteString(p.MIMEType)
	_ = binary.Write(sw, uint32(len(p.Description)))
	_ = sw.WriteString(p.Description)
	_ = binary.Write(sw, p.Width)
	_ = binary.Write(sw, p.Height)
	_ = binary.Write(sw, p.ColorDepth)
	_ = binary.Write(sw, p.IndexedColors)
	_ = binary.Write(sw, uint32(len(p.Data)))
	_ = sw.WriteBytes(p.Data)
	if err := sw.Err(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// String describes the picture.
// Example output: "Front cover (1200x1200 JPEG, 245KB)".
func (p *Picture) String() string {
	dims := ""
	if p.Width > 0 && p.Height > 0 {
		dims = fmt.Sprintf("%dx%d ", p.Width, p.Height)
	}
	return fmt.Sprintf("%s (%s%s, %s)", p.Type, dims, types.MIMEToFormat(p.MIMEType), types.FormatSize(len(p.Data)))
}
