package flac

import (
	"bytes"
	"fmt"
	"time"

	"github.com/icza/bitio"

	"github.com/mbrakken/murfie-backup/internal/types"
)

const streamInfoLength = 34

// StreamInfo holds the fixed-layout STREAMINFO block.
//
// Bit-packed fields are stored normalized: Channels is 1-8 and
// BitsPerSample 1-32, not their on-disk value-1 forms. TotalSamples of 0
// means unknown.
type StreamInfo struct {
	MinBlockSize  uint16
	MaxBlockSize  uint16
	MinFrameSize  uint32 // 24 bits, 0 means unknown
	MaxFrameSize  uint32 // 24 bits, 0 means unknown
	SampleRate    uint32 // 20 bits
	Channels      uint8
	BitsPerSample uint8
	TotalSamples  uint64 // 36 bits
	Signature     [16]byte
}

// bitFields reads successive fields and keeps the first error.
type bitFields struct {
	r   *bitio.Reader
	err error
}

func (f *bitFields) read(n uint8) uint64 {
	if f.err != nil {
		return 0
	}
	v, err := f.r.ReadBits(n)
	f.err = err
	return v
}

// DecodeStreamInfo decodes a 34-byte STREAMINFO body.
func DecodeStreamInfo(body []byte) (*StreamInfo, error) {
	if len(body) != streamInfoLength {
		return nil, fmt.Errorf("invalid STREAMINFO size: %d (expected %d)", len(body), streamInfoLength)
	}

	f := &bitFields{r: bitio.NewReader(bytes.NewReader(body))}
	si := &StreamInfo{
		MinBlockSize:  uint16(f.read(16)),
		MaxBlockSize:  uint16(f.read(16)),
		MinFrameSize:  uint32(f.read(24)),
		MaxFrameSize:  uint32(f.read(24)),
		SampleRate:    uint32(f.read(20)),
		Channels:      uint8(f.read(3)) + 1, // stored as (channels - 1)
		BitsPerSample: uint8(f.read(5)) + 1, // stored as (bits - 1)
		TotalSamples:  f.read(36),
	}
	if f.err != nil {
		return nil, fmt.Errorf("read STREAMINFO fields: %w", f.err)
	}
	copy(si.Signature[:], body[18:])

	return si, nil
}

// Validate reports the first field that cannot be encoded in its bit width.
func (si *StreamInfo) Validate() error {
	checks := []struct {
		field    string
		val      uint64
		min, max uint64
	}{
		{"min frame size", uint64(si.MinFrameSize), 0, 1<<24 - 1},
		{"max frame size", uint64(si.MaxFrameSize), 0, 1<<24 - 1},
		{"sample rate", uint64(si.SampleRate), 0, 1<<20 - 1},
		{"channels", uint64(si.Channels), 1, 8},
		{"bits per sample", uint64(si.BitsPerSample), 1, 32},
		{"total samples", si.TotalSamples, 0, 1<<36 - 1},
	}
	for _, c := range checks {
		if c.val < c.min || c.val > c.max {
			return &types.FieldRangeError{Field: c.field, Value: c.val, Min: c.min, Max: c.max}
		}
	}
	return nil
}

// Encode returns the 34-byte STREAMINFO body.
func (si *StreamInfo) Encode() ([]byte, error) {
	if err := si.Validate(); err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(make([]byte, 0, streamInfoLength))
	bw := bitio.NewWriter(buf)

	fields := []struct {
		val  uint64
		bits uint8
	}{
		{uint64(si.MinBlockSize), 16},
		{uint64(si.MaxBlockSize), 16},
		{uint64(si.MinFrameSize), 24},
		{uint64(si.MaxFrameSize), 24},
		{uint64(si.SampleRate), 20},
		{uint64(si.Channels - 1), 3},
		{uint64(si.BitsPerSample - 1), 5},
		{si.TotalSamples, 36},
	}
	for _, f := range fields {
		if err := bw.WriteBits(f.val, f.bits); err != nil {
			return nil, err
		}
	}
	if _, err := bw.Write(si.Signature[:]); err != nil {
		return nil, err
	}
	if err := bw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Duration returns the stream length, or 0 when the sample count or rate
// is unknown.
func (si *StreamInfo) Duration() time.Duration {
	if si.SampleRate == 0 || si.TotalSamples == 0 {
		return 0
	}
	seconds := float64(si.TotalSamples) / float64(si.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// String returns a human-readable summary.
// Example output: "44.1kHz 16-bit stereo, 3m25s".
func (si *StreamInfo) String() string {
	s := fmt.Sprintf("%.1fkHz %d-bit %s", float64(si.SampleRate)/1000, si.BitsPerSample, channelDescription(si.Channels))
	if d := si.Duration(); d > 0 {
		s += ", " + d.Round(time.Second).String()
	}
	return s
}

// channelDescription returns a human-readable channel description.
func channelDescription(channels uint8) string {
	switch channels {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	case 6:
		return "5.1"
	case 8:
		return "7.1"
	default:
		return fmt.Sprintf("%dch", channels)
	}
}
