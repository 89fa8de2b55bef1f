package flac

import (
	"bytes"

	"github.com/mbrakken/murfie-backup/internal/binary"
	"github.com/mbrakken/murfie-backup/internal/vorbis"
)

// DefaultVendor is written when a comment block is created from scratch.
const DefaultVendor = "murfie-backup"

// VorbisComment holds a VORBIS_COMMENT block.
//
// Its length fields are little-endian, unlike the rest of the format.
type VorbisComment struct {
	Vendor   string
	Comments []string // "KEY=VALUE", order preserved
}

// DecodeVorbisComment decodes a VORBIS_COMMENT body.
func DecodeVorbisComment(body []byte) (*VorbisComment, error) {
	return decodeVorbisComment(binary.NewSafeReader(body, ""))
}

func decodeVorbisComment(sr *binary.SafeReader) (*VorbisComment, error) {
	c := binary.NewCursor(sr, 0)

	vendorLength, c, err := binary.ReadValueLE[uint32](c, "vendor string length")
	if err != nil {
		return nil, err
	}
	vendor, c, err := c.String(int(vendorLength), "vendor string")
	if err != nil {
		return nil, err
	}

	count, c, err := binary.ReadValueLE[uint32](c, "number of comments")
	if err != nil {
		return nil, err
	}

	// Each entry needs at least its 4-byte length, which bounds the
	// preallocation for hostile counts.
	vc := &VorbisComment{
		Vendor:   vendor,
		Comments: make([]string, 0, min(int64(count), c.Remaining()/4)),
	}
	for i := uint32(0); i < count; i++ {
		var length uint32
		length, c, err = binary.ReadValueLE[uint32](c, "comment length")
		if err != nil {
			return nil, err
		}
		var comment string
		comment, c, err = c.String(int(length), "comment")
		if err != nil {
			return nil, err
		}
		vc.Comments = append(vc.Comments, comment)
	}

	return vc, nil
}

// Encode returns the VORBIS_COMMENT body.
func (vc *VorbisComment) Encode() ([]byte, error) {
	size := 8 + len(vc.Vendor)
	for _, comment := range vc.Comments {
		size += 4 + len(comment)
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	sw := binary.NewSafeWriter(buf)

	_ = binary.WriteLE(sw, uint32(len(vc.Vendor)))
	_ = sw.WriteString(vc.Vendor)
	_ = binary.WriteLE(sw, uint32(len(vc.Comments)))
	for _, comment := range vc.Comments {
		_ = binary.WriteLE(sw, uint32(len(comment)))
		_ = sw.WriteString(comment)
	}
	if err := sw.Err(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Get returns every value of key, in order. Keys are case-insensitive.
func (vc *VorbisComment) Get(key string) []string {
	return vorbis.Get(vc.Comments, key)
}

// First returns the first value of key, or "".
func (vc *VorbisComment) First(key string) string {
	return vorbis.First(vc.Comments, key)
}

// Set replaces all values of key.
func (vc *VorbisComment) Set(key string, values ...string) error {
	comments, err := vorbis.Set(vc.Comments, key, values...)
	if err != nil {
		return err
	}
	vc.Comments = comments
	return nil
}

// Add appends a value for key.
func (vc *VorbisComment) Add(key, value string) error {
	comments, err := vorbis.Add(vc.Comments, key, value)
	if err != nil {
		return err
	}
	vc.Comments = comments
	return nil
}

// Remove deletes every value of key and reports how many were removed.
func (vc *VorbisComment) Remove(key string) int {
	comments, n := vorbis.Remove(vc.Comments, key)
	vc.Comments = comments
	return n
}
