package flac

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestParseSeekTable(t *testing.T) {
	buf := &bytes.Buffer{}
	points := []SeekPoint{
		{SampleNumber: 0, Offset: 0, Samples: 4096},
		{SampleNumber: 441000, Offset: 1 << 20, Samples: 4096},
		{SampleNumber: PlaceholderSample},
	}
	for _, p := range points {
		binary.Write(buf, binary.BigEndian, p.SampleNumber)
		binary.Write(buf, binary.BigEndian, p.Offset)
		binary.Write(buf, binary.BigEndian, p.Samples)
	}

	st, err := ParseSeekTable(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseSeekTable() error = %v", err)
	}
	if len(st.Points) != len(points) {
		t.Fatalf("len(Points) = %d, want %d", len(st.Points), len(points))
	}
	for i, p := range st.Points {
		if p != points[i] {
			t.Errorf("Points[%d] = %+v, want %+v", i, p, points[i])
		}
	}
	if st.Points[0].IsPlaceholder() || !st.Points[2].IsPlaceholder() {
		t.Error("IsPlaceholder() mismatch")
	}
}

func TestParseSeekTable_BadLength(t *testing.T) {
	if _, err := ParseSeekTable(make([]byte, 20)); err == nil {
		t.Fatal("expected error for 20-byte table")
	}

	st, err := ParseSeekTable(nil)
	if err != nil || len(st.Points) != 0 {
		t.Errorf("empty table: %+v, %v", st, err)
	}
}
