// Package backup rewrites the metadata of FLAC files downloaded from a
// music locker so they can be kept as a tagged local library.
//
// A FLAC file is decoded into a Track, which exposes every metadata
// block. Tags and cover art are edited in memory and the file is encoded
// again; the audio frames are never decoded or changed.
//
// # Quick Start
//
// Tag a downloaded track and write it without overwriting an existing file:
//
//	out, err := backup.Embed(data, map[string]string{
//		"TITLE":  "So What",
//		"ARTIST": "Miles Davis",
//	}, coverJPEG)
//	if err != nil {
//		log.Fatal(err)
//	}
//	path, err := backup.WriteFile("01 So What.flac", out, backup.WithNoClobber())
//
// # Editing a Track
//
//	track, err := backup.Decode(data, backup.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	track.SetTag("ALBUM", "Kind of Blue")
//	if err := track.SetCover(png); err != nil {
//		return err
//	}
//	out, err := track.Encode()
//
// # Warnings
//
// Problems confined to one block (a reserved block type, a picture whose
// declared size is wrong, a block that cannot be interpreted) do not fail
// decoding. The block is kept, a Warning is recorded on the Track and the
// configured logger receives it. WithStrictParsing turns warnings into
// errors.
//
// # Concurrency
//
// Tracks are not safe for concurrent mutation. Independent buffers can be
// processed in parallel with EmbedMany.
package backup
