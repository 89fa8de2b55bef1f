package backup

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/mbrakken/murfie-backup/internal/artwork"
	"github.com/mbrakken/murfie-backup/internal/flac"
	"github.com/mbrakken/murfie-backup/internal/types"
)

// Track is a decoded FLAC file with editable metadata.
//
// The embedded Container exposes every metadata block; the helper methods
// below cover the common edits. Picture data, reserved blocks and the
// audio frames reference the buffer the track was decoded from, so that
// buffer must not be modified while the track is in use.
type Track struct {
	*Container

	// Path the track was read from, or the name given with WithPath
	Path string

	// Warnings encountered during decoding (non-fatal issues)
	Warnings []Warning

	logger zerolog.Logger
}

// Open reads and decodes a FLAC file.
func Open(path string, opts ...Option) (*Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(data, append([]Option{WithPath(path)}, opts...)...)
}

// Decode decodes a complete FLAC file held in memory.
//
// Structural problems (no "fLaC" marker, a block running past the end of
// data, no last-block flag, a malformed STREAMINFO) are returned as
// errors. Anything confined to a single block is recorded in
// Track.Warnings and the block is preserved.
func Decode(data []byte, opts ...Option) (*Track, error) {
	options := applyOptions(opts)

	c, warnings, err := flac.Parse(data, options.path)
	if err != nil {
		return nil, err
	}
	if options.maxArtworkSize > 0 {
		warnings = append(warnings, dropLargePictures(c, options.maxArtworkSize)...)
	}

	for _, w := range warnings {
		options.logger.Warn().
			Str("stage", w.Stage).
			Stringer("kind", w.Kind).
			Int64("offset", w.Offset).
			Msg(w.Message)
	}

	if options.strictParsing && len(warnings) > 0 {
		return nil, &StrictParsingError{Warnings: warnings}
	}
	if options.ignoreWarnings {
		warnings = nil
	}

	track := &Track{
		Container: c,
		Path:      options.path,
		Warnings:  warnings,
		logger:    options.logger,
	}
	options.logger.Debug().
		Str("path", track.Path).
		Int("pictures", len(c.Pictures)).
		Int("unspecified", len(c.Unspecified)).
		Int("audio_bytes", len(c.Audio)).
		Msg("decoded track")

	return track, nil
}

// dropLargePictures removes pictures whose data exceeds limit.
func dropLargePictures(c *Container, limit int) []Warning {
	var warnings []Warning
	kept := c.Pictures[:0:0]
	for _, p := range c.Pictures {
		if len(p.Data) <= limit {
			kept = append(kept, p)
			continue
		}
		warnings = append(warnings, Warning{
			Stage:   "artwork",
			Kind:    types.WarningArtworkTooLarge,
			Message: fmt.Sprintf("%s dropped: %d bytes exceeds limit of %d", p.Type, len(p.Data), limit),
		})
	}
	c.Pictures = kept
	return warnings
}

// Tag returns the first value of key, or "" when it is not set.
// Keys are case-insensitive.
func (t *Track) Tag(key string) string {
	if t.VorbisComment == nil {
		return ""
	}
	return t.VorbisComment.First(key)
}

// TagValues returns every value of key, in order.
func (t *Track) TagValues(key string) []string {
	if t.VorbisComment == nil {
		return nil
	}
	return t.VorbisComment.Get(key)
}

// SetTag replaces every value of key with value.
//
// A comment block with the default vendor string is created when the
// track has none.
func (t *Track) SetTag(key, value string) error {
	return t.Comments().Set(key, value)
}

// AddTag appends a value for key, keeping existing values.
func (t *Track) AddTag(key, value string) error {
	return t.Comments().Add(key, value)
}

// RemoveTag deletes every value of key and reports how many were removed.
func (t *Track) RemoveTag(key string) int {
	if t.VorbisComment == nil {
		return 0
	}
	return t.VorbisComment.Remove(key)
}

// SetTags sets every entry of tags. Keys are applied in sorted order so
// the resulting comment list does not depend on map iteration.
func (t *Track) SetTags(tags map[string]string) error {
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		if err := t.SetTag(key, tags[key]); err != nil {
			return fmt.Errorf("set tag %s: %w", key, err)
		}
	}
	return nil
}

// SetCover embeds image as the front cover, replacing any existing front
// cover. The MIME type, dimensions and color depth are read from the
// image itself; JPEG, PNG and GIF are supported.
func (t *Track) SetCover(image []byte) error {
	return t.SetPicture(PictureFrontCover, "", image)
}

// SetPicture embeds image as a picture of type typ, replacing any existing
// picture of that type.
func (t *Track) SetPicture(typ PictureType, description string, image []byte) error {
	info, err := artwork.Inspect(image)
	if err != nil {
		return fmt.Errorf("set %s: %w", typ, err)
	}

	replaced := t.ReplacePicture(Picture{
		Type:          typ,
		MIMEType:      info.MIMEType,
		Description:   description,
		Width:         info.Width,
		Height:        info.Height,
		ColorDepth:    info.ColorDepth,
		IndexedColors: info.IndexedColors,
		Data:          image,
	})
	t.logger.Debug().
		Stringer("type", typ).
		Str("mime", info.MIMEType).
		Uint32("width", info.Width).
		Uint32("height", info.Height).
		Int("replaced", replaced).
		Msg("picture set")

	return nil
}

// Encode rebuilds the complete FLAC file.
//
// Every block is re-encoded and the last-block flag is placed on the final
// block. The audio frames are appended unchanged.
func (t *Track) Encode() ([]byte, error) {
	out, err := flac.Encode(t.Container)
	if err != nil {
		return nil, err
	}
	t.logger.Debug().Str("path", t.Path).Int("bytes", len(out)).Msg("encoded track")
	return out, nil
}
