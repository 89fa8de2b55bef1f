package flac

import (
	"fmt"
	"strings"
	"time"

	"github.com/mbrakken/murfie-backup/internal/binary"
)

// LeadOutTrack is the track number of a CD-DA cue sheet's lead-out.
const LeadOutTrack = 170

const (
	cueSheetMinLength = 128 + 8 + 1 + 258 + 1
	cueTrackMinLength = 8 + 1 + 12 + 1 + 13 + 1
	cueIndexLength    = 8 + 1 + 3
)

// CueSheet is a decoded CUESHEET block.
//
// Containers keep cue sheets as raw blocks; CueSheet is for inspection.
type CueSheet struct {
	MediaCatalogNumber string
	LeadIn             uint64
	IsCD               bool
	Tracks             []CueTrack
}

// CueTrack represents a track in a cue sheet
type CueTrack struct {
	Offset      uint64 // samples from start of audio
	Number      byte   // track number (1-99, 170=lead-out)
	ISRC        string
	IsAudio     bool
	PreEmphasis bool
	Indices     []CueIndex
}

// CueIndex represents an index point within a track
type CueIndex struct {
	Offset uint64 // samples from start of track
	Number byte
}

// ParseCueSheet decodes a CUESHEET body.
func ParseCueSheet(body []byte) (*CueSheet, error) {
	if len(body) < cueSheetMinLength {
		return nil, fmt.Errorf("CUESHEET block too short: %d bytes (need at least %d)", len(body), cueSheetMinLength)
	}

	cr := binary.NewChainReader(binary.NewCursor(binary.NewSafeReader(body, ""), 0))

	cs := &CueSheet{}
	cs.MediaCatalogNumber = strings.TrimRight(string(cr.Bytes(128, "media catalog number")), "\x00")
	cs.LeadIn = binary.ReadChained[uint64](cr, "lead-in samples")
	flags := binary.ReadChained[uint8](cr, "cuesheet flags")
	cs.IsCD = flags&0x80 != 0
	cr.Skip(258, "cuesheet reserved")
	trackCount := binary.ReadChained[uint8](cr, "track count")
	if err := cr.Error(); err != nil {
		return nil, err
	}

	cs.Tracks = make([]CueTrack, 0, trackCount)
	for i := range int(trackCount) {
		track, err := parseCueTrack(cr)
		if err != nil {
			return nil, fmt.Errorf("parse track %d: %w", i, err)
		}
		cs.Tracks = append(cs.Tracks, track)
	}

	return cs, nil
}

// parseCueTrack parses a single track from CUESHEET
func parseCueTrack(cr *binary.ChainReader) (CueTrack, error) {
	if cr.Cursor().Remaining() < cueTrackMinLength {
		return CueTrack{}, fmt.Errorf("track data exceeds block bounds")
	}

	track := CueTrack{}
	track.Offset = binary.ReadChained[uint64](cr, "track offset")
	track.Number = binary.ReadChained[uint8](cr, "track number")
	track.ISRC = strings.TrimRight(string(cr.Bytes(12, "ISRC")), "\x00")
	flags := binary.ReadChained[uint8](cr, "track flags")
	track.IsAudio = flags&0x80 == 0     // Audio if bit 7 is NOT set
	track.PreEmphasis = flags&0x40 != 0 // Pre-emphasis if bit 6 is set
	cr.Skip(13, "track reserved")
	indexCount := binary.ReadChained[uint8](cr, "index count")
	if err := cr.Error(); err != nil {
		return CueTrack{}, err
	}

	if cr.Cursor().Remaining() < int64(indexCount)*cueIndexLength {
		return CueTrack{}, fmt.Errorf("index data exceeds block bounds")
	}
	track.Indices = make([]CueIndex, 0, indexCount)
	for range int(indexCount) {
		idx := CueIndex{
			Offset: binary.ReadChained[uint64](cr, "index offset"),
			Number: binary.ReadChained[uint8](cr, "index number"),
		}
		cr.Skip(3, "index reserved")
		track.Indices = append(track.Indices, idx)
	}

	return track, cr.Error()
}

// TrackStarts returns the start time of every audio track, excluding the
// lead-out. It returns nil when sampleRate is 0.
func (cs *CueSheet) TrackStarts(sampleRate uint32) []time.Duration {
	if sampleRate == 0 {
		return nil
	}

	var starts []time.Duration
	for _, track := range cs.Tracks {
		if !track.IsAudio || track.Number == LeadOutTrack {
			continue
		}
		seconds := float64(track.Offset) / float64(sampleRate)
		starts = append(starts, time.Duration(seconds*float64(time.Second)))
	}
	return starts
}
