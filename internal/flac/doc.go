// Package flac decodes and re-encodes the metadata section of FLAC files.
//
// A FLAC file is the "fLaC" marker, a sequence of metadata blocks (each a
// 4-byte header and a body) ending with a block whose header has the
// last-block flag set, then the audio frames. Walk enumerates blocks,
// Parse decodes them into a Container and Encode rebuilds a file from a
// Container without touching the audio frames.
package flac
