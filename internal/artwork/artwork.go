// Package artwork identifies cover images before they are embedded.
package artwork

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/gabriel-vasile/mimetype"

	"github.com/mbrakken/murfie-backup/internal/types"
)

// Info describes an image as a PICTURE block records it.
type Info struct {
	MIMEType      string
	Width         uint32
	Height        uint32
	ColorDepth    uint32 // bits per pixel
	IndexedColors uint32 // palette size, 0 for non-indexed images
}

var supported = []string{"image/jpeg", "image/png", "image/gif"}

// Inspect sniffs the type of data and reads its dimensions from the image
// header. Only the header is decoded.
func Inspect(data []byte) (Info, error) {
	mtype := mimetype.Detect(data)
	mime := mtype.String()

	ok := false
	for _, s := range supported {
		if mtype.Is(s) {
			mime = s
			ok = true
			break
		}
	}
	if !ok {
		return Info{}, &types.UnsupportedImageError{MIMEType: mime}
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, &types.UnsupportedImageError{MIMEType: mime, Reason: err.Error()}
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return Info{}, &types.UnsupportedImageError{MIMEType: mime, Reason: fmt.Sprintf("invalid dimensions %dx%d", cfg.Width, cfg.Height)}
	}

	info := Info{
		MIMEType: mime,
		Width:    uint32(cfg.Width),
		Height:   uint32(cfg.Height),
	}
	info.ColorDepth, info.IndexedColors = depth(cfg.ColorModel)
	return info, nil
}

// depth maps a color model to bits per pixel and palette size.
func depth(m color.Model) (bits, colors uint32) {
	if p, ok := m.(color.Palette); ok {
		return 8, uint32(len(p))
	}

	switch m {
	case color.GrayModel:
		return 8, 0
	case color.Gray16Model:
		return 16, 0
	case color.YCbCrModel, color.NYCbCrAModel:
		return 24, 0
	case color.RGBA64Model, color.NRGBA64Model:
		return 64, 0
	default:
		// RGBA, NRGBA, CMYK
		return 32, 0
	}
}
