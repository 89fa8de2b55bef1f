package backup

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/mbrakken/murfie-backup/internal/flac"
)

var testAudio = []byte{0xFF, 0xF8, 0x69, 0x18, 0x00, 0x00, 0xBF, 0x03, 0x58, 0xFD}

// testContainer returns a small but complete container.
func testContainer(comments ...string) *Container {
	c := &Container{
		StreamInfo: &StreamInfo{
			MinBlockSize:  4096,
			MaxBlockSize:  4096,
			SampleRate:    44100,
			Channels:      2,
			BitsPerSample: 16,
			TotalSamples:  44100 * 120,
		},
		Padding: &Padding{Length: 256},
		Audio:   testAudio,
	}
	if len(comments) > 0 {
		c.VorbisComment = &VorbisComment{Vendor: "reference libFLAC 1.4.3", Comments: comments}
	}
	return c
}

// encodeContainer encodes c or fails the test.
func encodeContainer(tb testing.TB, c *Container) []byte {
	tb.Helper()
	data, err := flac.Encode(c)
	if err != nil {
		tb.Fatalf("encode test container: %v", err)
	}
	return data
}

// testFLAC returns an encoded file carrying comments.
func testFLAC(tb testing.TB, comments ...string) []byte {
	tb.Helper()
	return encodeContainer(tb, testContainer(comments...))
}

// testPNG returns a w x h PNG image.
func testPNG(tb testing.TB, w, h int) []byte {
	tb.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, 0, color.NRGBA{G: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		tb.Fatal(err)
	}
	return buf.Bytes()
}
