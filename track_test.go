package backup

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDecode(t *testing.T) {
	data := testFLAC(t, "TITLE=So What", "ARTIST=Miles Davis", "ARTIST=John Coltrane")

	track, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(track.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", track.Warnings)
	}
	if track.StreamInfo.SampleRate != 44100 {
		t.Errorf("SampleRate = %d", track.StreamInfo.SampleRate)
	}
	if track.Tag("title") != "So What" {
		t.Errorf("Tag(title) = %q", track.Tag("title"))
	}
	if got := track.TagValues("ARTIST"); !reflect.DeepEqual(got, []string{"Miles Davis", "John Coltrane"}) {
		t.Errorf("TagValues(ARTIST) = %q", got)
	}
	if !bytes.Equal(track.Audio, testAudio) {
		t.Errorf("Audio = % x", track.Audio)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Run("not flac", func(t *testing.T) {
		track, err := Decode([]byte("ID3\x04\x00\x00\x00\x00\x00\x00"), WithPath("song.mp3"))
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("expected *FormatError, got %v", err)
		}
		if track != nil {
			t.Error("expected nil track")
		}
		if !strings.Contains(err.Error(), "song.mp3") {
			t.Errorf("error should name the path: %v", err)
		}
	})

	t.Run("truncated", func(t *testing.T) {
		data := testFLAC(t, "TITLE=x")
		cut := data[:len(data)-len(testAudio)-100]

		_, err := Decode(cut)
		var truncErr *TruncatedContainerError
		if !errors.As(err, &truncErr) {
			t.Fatalf("expected *TruncatedContainerError, got %v", err)
		}
	})
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.flac")
	if err := os.WriteFile(path, testFLAC(t, "ALBUM=Kind of Blue"), 0o644); err != nil {
		t.Fatal(err)
	}

	track, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if track.Path != path || track.Tag("ALBUM") != "Kind of Blue" {
		t.Errorf("track = %+v", track)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.flac")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Open(missing) = %v, want ErrNotExist", err)
	}
}

// withReservedBlock returns a file containing one reserved block type.
func withReservedBlock(t *testing.T) []byte {
	t.Helper()
	c := testContainer("TITLE=x")
	c.Unspecified = []RawBlock{{Type: 42, Data: []byte("future")}}
	return encodeContainer(t, c)
}

func TestDecode_WarningOptions(t *testing.T) {
	data := withReservedBlock(t)

	t.Run("default", func(t *testing.T) {
		track, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if len(track.Warnings) != 1 || track.Warnings[0].Kind != WarningUnspecifiedBlock {
			t.Errorf("Warnings = %v", track.Warnings)
		}
	})

	t.Run("strict", func(t *testing.T) {
		track, err := Decode(data, WithStrictParsing())
		var strictErr *StrictParsingError
		if !errors.As(err, &strictErr) {
			t.Fatalf("expected *StrictParsingError, got %v", err)
		}
		if track != nil || len(strictErr.Warnings) != 1 {
			t.Errorf("track = %v, warnings = %v", track, strictErr.Warnings)
		}
	})

	t.Run("ignore", func(t *testing.T) {
		var logs bytes.Buffer
		track, err := Decode(data, WithIgnoreWarnings(), WithLogger(zerolog.New(&logs)))
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if track.Warnings != nil {
			t.Errorf("Warnings = %v, want nil", track.Warnings)
		}
		if !strings.Contains(logs.String(), `"level":"warn"`) || !strings.Contains(logs.String(), "reserved") {
			t.Errorf("warning not logged: %s", logs.String())
		}
	})
}

func TestDecode_MaxArtworkSize(t *testing.T) {
	c := testContainer()
	c.Pictures = []Picture{
		{Type: PictureFrontCover, MIMEType: "image/png", Data: make([]byte, 100)},
		{Type: PictureBackCover, MIMEType: "image/png", Data: make([]byte, 10)},
	}
	data := encodeContainer(t, c)

	track, err := Decode(data, WithMaxArtworkSize(50))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(track.Pictures) != 1 || track.Pictures[0].Type != PictureBackCover {
		t.Errorf("Pictures = %v", track.Pictures)
	}
	if len(track.Warnings) != 1 || track.Warnings[0].Kind != WarningArtworkTooLarge {
		t.Errorf("Warnings = %v", track.Warnings)
	}
}

func TestTrackTags(t *testing.T) {
	track, err := Decode(testFLAC(t))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if track.VorbisComment != nil {
		t.Fatal("test file should have no comment block")
	}
	if track.Tag("TITLE") != "" || track.RemoveTag("TITLE") != 0 {
		t.Error("empty track should have no tags")
	}

	if err := track.SetTags(map[string]string{"TITLE": "Blue in Green", "ARTIST": "Miles Davis", "DATE": "1959"}); err != nil {
		t.Fatalf("SetTags() error = %v", err)
	}
	if track.VorbisComment.Vendor != "murfie-backup" {
		t.Errorf("Vendor = %q", track.VorbisComment.Vendor)
	}
	want := []string{"ARTIST=Miles Davis", "DATE=1959", "TITLE=Blue in Green"}
	if !reflect.DeepEqual(track.VorbisComment.Comments, want) {
		t.Errorf("Comments = %q, want %q", track.VorbisComment.Comments, want)
	}

	if err := track.AddTag("ARTIST", "Bill Evans"); err != nil {
		t.Fatalf("AddTag() error = %v", err)
	}
	if err := track.SetTag("DATE", "1959-08-17"); err != nil {
		t.Fatalf("SetTag() error = %v", err)
	}
	want = []string{"ARTIST=Miles Davis", "DATE=1959-08-17", "TITLE=Blue in Green", "ARTIST=Bill Evans"}
	if !reflect.DeepEqual(track.VorbisComment.Comments, want) {
		t.Errorf("Comments = %q, want %q", track.VorbisComment.Comments, want)
	}

	if n := track.RemoveTag("artist"); n != 2 {
		t.Errorf("RemoveTag() = %d, want 2", n)
	}
	if err := track.SetTag("", "x"); err == nil {
		t.Error("SetTag with empty key succeeded")
	}
	if err := track.SetTags(map[string]string{"A=B": "x"}); err == nil {
		t.Error("SetTags with '=' in key succeeded")
	}
}

func TestTrackSetCover(t *testing.T) {
	c := testContainer("TITLE=x")
	c.Pictures = []Picture{
		{Type: PictureFrontCover, MIMEType: "image/jpeg", Data: []byte{0xFF, 0xD8}},
		{Type: PictureMedia, MIMEType: "image/jpeg", Data: []byte{0xFF, 0xD8}},
	}
	track, err := Decode(encodeContainer(t, c))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	cover := testPNG(t, 300, 200)
	if err := track.SetCover(cover); err != nil {
		t.Fatalf("SetCover() error = %v", err)
	}

	fronts := track.PicturesOf(PictureFrontCover)
	if len(fronts) != 1 {
		t.Fatalf("len(front covers) = %d, want 1", len(fronts))
	}
	front := fronts[0]
	if front.MIMEType != "image/png" || front.Width != 300 || front.Height != 200 || front.ColorDepth != 32 {
		t.Errorf("front cover = %+v", front)
	}
	if len(track.PicturesOf(PictureMedia)) != 1 {
		t.Error("SetCover removed a non-cover picture")
	}

	out, err := track.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	again, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode(encoded) error = %v", err)
	}
	if got := again.PicturesOf(PictureFrontCover); len(got) != 1 || !bytes.Equal(got[0].Data, cover) {
		t.Error("cover did not survive encoding")
	}
}

func TestTrackSetCover_Unsupported(t *testing.T) {
	track, err := Decode(testFLAC(t))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	err = track.SetCover([]byte("<html>not an image</html>"))
	var unsupported *UnsupportedImageError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedImageError, got %v", err)
	}
	if len(track.Pictures) != 0 {
		t.Error("picture added despite error")
	}
}

func TestTrackEncode(t *testing.T) {
	data := withReservedBlock(t)
	track, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	out, err := track.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("unmodified track did not encode to identical bytes")
	}

	track.StreamInfo = nil
	if _, err := track.Encode(); !errors.As(err, new(*MissingStreamInfoError)) {
		t.Errorf("Encode() without STREAMINFO = %v", err)
	}
}
