package flac

import (
	"slices"

	"github.com/mbrakken/murfie-backup/internal/types"
)

// Container is a decoded FLAC file: its metadata blocks and the audio
// frames that follow them.
//
// Slices decoded from an input buffer (Audio, picture and raw block data)
// reference that buffer; they are not copied.
type Container struct {
	StreamInfo    *StreamInfo
	Padding       *Padding
	Applications  []Application
	SeekTable     *RawBlock
	CueSheet      *RawBlock
	VorbisComment *VorbisComment
	Pictures      []Picture
	Unspecified   []RawBlock

	// Audio is everything after the last metadata block, kept untouched.
	Audio []byte
}

// Comments returns the comment block, creating an empty one with the
// default vendor string when the container has none. A comment block that
// could not be decoded is discarded in favor of the new one.
func (c *Container) Comments() *VorbisComment {
	if c.VorbisComment == nil {
		c.Unspecified = slices.DeleteFunc(c.Unspecified, func(r RawBlock) bool {
			return r.Type == TypeVorbisComment
		})
		c.VorbisComment = &VorbisComment{Vendor: DefaultVendor}
	}
	return c.VorbisComment
}

// hasRaw reports whether a raw block of type t is present.
func (c *Container) hasRaw(t BlockType) bool {
	return slices.ContainsFunc(c.Unspecified, func(r RawBlock) bool {
		return r.Type == t
	})
}

// PicturesOf returns the pictures of type t, in order.
func (c *Container) PicturesOf(t types.PictureType) []Picture {
	var out []Picture
	for _, p := range c.Pictures {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// ReplacePicture removes every picture of pic's type and appends pic.
// It returns the number of pictures removed.
func (c *Container) ReplacePicture(pic Picture) int {
	removed := c.RemovePictures(pic.Type)
	c.Pictures = append(c.Pictures, pic)
	return removed
}

// RemovePictures deletes every picture of type t and reports how many were
// removed.
func (c *Container) RemovePictures(t types.PictureType) int {
	kept := c.Pictures[:0:0]
	for _, p := range c.Pictures {
		if p.Type != t {
			kept = append(kept, p)
		}
	}
	removed := len(c.Pictures) - len(kept)
	c.Pictures = kept
	return removed
}
