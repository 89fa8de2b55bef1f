package flac

import (
	"fmt"

	"github.com/mbrakken/murfie-backup/internal/binary"
)

const seekPointLength = 18

// PlaceholderSample marks a seek point reserved for later use.
const PlaceholderSample = 0xFFFFFFFFFFFFFFFF

// SeekPoint is one entry of a SEEKTABLE block.
type SeekPoint struct {
	SampleNumber uint64 // first sample of the target frame
	Offset       uint64 // bytes from the first frame header to the target frame
	Samples      uint16 // samples in the target frame
}

// IsPlaceholder reports whether p is a placeholder point.
func (p SeekPoint) IsPlaceholder() bool {
	return p.SampleNumber == PlaceholderSample
}

// SeekTable is a decoded SEEKTABLE block.
//
// Containers keep seek tables as raw blocks; SeekTable is for inspection.
type SeekTable struct {
	Points []SeekPoint
}

// ParseSeekTable decodes a SEEKTABLE body.
func ParseSeekTable(body []byte) (*SeekTable, error) {
	if len(body)%seekPointLength != 0 {
		return nil, fmt.Errorf("SEEKTABLE size %d is not a multiple of %d", len(body), seekPointLength)
	}

	cr := binary.NewChainReader(binary.NewCursor(binary.NewSafeReader(body, ""), 0))
	st := &SeekTable{Points: make([]SeekPoint, 0, len(body)/seekPointLength)}
	for range len(body) / seekPointLength {
		st.Points = append(st.Points, SeekPoint{
			SampleNumber: binary.ReadChained[uint64](cr, "seek point sample number"),
			Offset:       binary.ReadChained[uint64](cr, "seek point offset"),
			Samples:      binary.ReadChained[uint16](cr, "seek point samples"),
		})
	}
	if err := cr.Error(); err != nil {
		return nil, err
	}
	return st, nil
}
