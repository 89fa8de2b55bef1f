package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	backup "github.com/mbrakken/murfie-backup"
	"github.com/mbrakken/murfie-backup/internal/flac"
)

func dump(path string, w io.Writer, logger zerolog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	blocks, audioOffset, err := flac.Walk(data, path)
	if err != nil {
		return err
	}

	var sampleRate uint32
	for i, b := range blocks {
		last := ""
		if b.IsLast {
			last = " (last)"
		}
		fmt.Fprintf(w, "#%d %s at offset %d, %d bytes%s\n", i, b.Type, b.Offset, b.Length, last)

		switch b.Type {
		case flac.TypeStreamInfo:
			si, err := flac.DecodeStreamInfo(b.Data)
			if err != nil {
				fmt.Fprintf(w, "  error: %v\n", err)
				continue
			}
			sampleRate = si.SampleRate
			fmt.Fprintf(w, "  %s, %d samples\n", si, si.TotalSamples)
			fmt.Fprintf(w, "  block size %d-%d, frame size %d-%d\n", si.MinBlockSize, si.MaxBlockSize, si.MinFrameSize, si.MaxFrameSize)
			fmt.Fprintf(w, "  md5 %x\n", si.Signature)

		case flac.TypeApplication:
			if app, err := flac.DecodeApplication(b.Data); err == nil {
				fmt.Fprintf(w, "  id %q, %d bytes of data\n", app.Name(), len(app.Data))
			}

		case flac.TypeSeekTable:
			st, err := flac.ParseSeekTable(b.Data)
			if err != nil {
				fmt.Fprintf(w, "  error: %v\n", err)
				continue
			}
			for j, p := range st.Points {
				if p.IsPlaceholder() {
					fmt.Fprintf(w, "  point %d: placeholder\n", j)
					continue
				}
				fmt.Fprintf(w, "  point %d: sample %d, offset %d, %d samples\n", j, p.SampleNumber, p.Offset, p.Samples)
			}

		case flac.TypeVorbisComment:
			vc, err := flac.DecodeVorbisComment(b.Data)
			if err != nil {
				fmt.Fprintf(w, "  error: %v\n", err)
				continue
			}
			fmt.Fprintf(w, "  vendor %q\n", vc.Vendor)
			for _, c := range vc.Comments {
				fmt.Fprintf(w, "  %s\n", c)
			}

		case flac.TypeCueSheet:
			cs, err := flac.ParseCueSheet(b.Data)
			if err != nil {
				fmt.Fprintf(w, "  error: %v\n", err)
				continue
			}
			fmt.Fprintf(w, "  catalog %q, lead-in %d, cd %v\n", cs.MediaCatalogNumber, cs.LeadIn, cs.IsCD)
			starts := cs.TrackStarts(sampleRate)
			n := 0
			for _, t := range cs.Tracks {
				line := fmt.Sprintf("  track %d: offset %d, %d indices", t.Number, t.Offset, len(t.Indices))
				if t.IsAudio && t.Number != flac.LeadOutTrack && n < len(starts) {
					line += fmt.Sprintf(", starts at %s", starts[n])
					n++
				}
				fmt.Fprintln(w, line)
			}

		case flac.TypePicture:
			pic, _, err := flac.DecodePicture(b.Data)
			if err != nil {
				fmt.Fprintf(w, "  error: %v\n", err)
				continue
			}
			fmt.Fprintf(w, "  %s, %s\n", pic, pic.MIMEType)
		}
	}
	fmt.Fprintf(w, "audio at offset %d, %d bytes\n", audioOffset, int64(len(data))-audioOffset)

	track, err := backup.Decode(data, backup.WithPath(path), backup.WithLogger(logger))
	if err != nil {
		return err
	}
	for _, warning := range track.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
	return nil
}
