package backup

import (
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "offset beyond buffer",
			err:      &OutOfBoundsError{Path: "song.flac", Offset: 1000, Length: 4, Size: 500, What: "picture type"},
			contains: []string{"song.flac", "offset 1000 out of bounds", "size: 500", "picture type"},
		},
		{
			name:     "read would exceed buffer",
			err:      &OutOfBoundsError{Path: "song.flac", Offset: 100, Length: 50, Size: 120, What: "comment"},
			contains: []string{"read of 50 bytes", "offset 100", "exceed size 120", "comment"},
		},
		{
			name:     "format",
			err:      &FormatError{Path: "song.mp3", Magic: []byte("ID3\x04")},
			contains: []string{"song.mp3", "not a FLAC stream", `"ID3\x04"`},
		},
		{
			name:     "truncated",
			err:      &TruncatedContainerError{Path: "cut.flac", Reason: "no last metadata block before end of data", Offset: 42, Size: 42},
			contains: []string{"cut.flac", "truncated", "offset 42", "no last metadata block"},
		},
		{
			name:     "corrupted streaminfo",
			err:      &CorruptedBlockError{Block: "STREAMINFO", Reason: "invalid STREAMINFO size: 20 (expected 34)", Offset: 4},
			contains: []string{"corrupted STREAMINFO block", "offset 4", "expected 34"},
		},
		{
			name:     "missing streaminfo",
			err:      &MissingStreamInfoError{},
			contains: []string{"STREAMINFO"},
		},
		{
			name:     "too large",
			err:      &BlockTooLargeError{Block: "PICTURE", Length: 1 << 24},
			contains: []string{"PICTURE", "16777216", "16777215"},
		},
		{
			name:     "field range",
			err:      &FieldRangeError{Field: "channels", Value: 9, Min: 1, Max: 8},
			contains: []string{"channels", "9", "[1, 8]"},
		},
		{
			name:     "unsupported image",
			err:      &UnsupportedImageError{MIMEType: "image/bmp"},
			contains: []string{"unsupported image", "image/bmp"},
		},
		{
			name:     "strict parsing",
			err:      &StrictParsingError{Warnings: []Warning{{Message: "block type 42 is reserved"}, {Message: "x"}}},
			contains: []string{"strict parsing failed", "block type 42 is reserved", "1 more"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Stage: "picture", Kind: WarningPayloadLengthMismatch, Message: "size mismatch", Offset: 120}
	if got, want := w.String(), "picture (at offset 120): size mismatch"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := (Warning{Stage: "metadata", Message: "m"}).String(), "metadata: m"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
