package backup

import "os"

// SaveOption configures behavior when writing files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	path, err := backup.WriteFile("song.flac", data,
//	    backup.WithNoClobber(),
//	    backup.WithValidation(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for writing files.
type saveOptions struct {
	backupSuffix string      // Suffix for backup file (e.g., ".bak")
	noClobber    bool        // Never replace an existing file
	validate     bool        // Re-read after write to verify
	perm         os.FileMode // Permissions of the written file
}

// defaultSaveOptions returns the default configuration for writing.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{
		backupSuffix: "",
		noClobber:    false,
		validate:     false,
		perm:         0o644,
	}
}

// WithBackup keeps the file being replaced.
//
// The existing file is renamed with the specified suffix appended before
// the new one takes its place. For example, WithBackup(".bak") moves
// "song.flac" to "song.flac.bak". An existing backup is overwritten.
// Ignored together with WithNoClobber, which never replaces a file.
func WithBackup(suffix string) SaveOption {
	return func(o *saveOptions) {
		o.backupSuffix = suffix
	}
}

// WithNoClobber never replaces an existing file.
//
// When the path is taken, a numeric suffix is added before the extension
// ("song.flac", then "song_1.flac", "song_2.flac", ...) until a free name
// is found. Two releases of the same album can be saved side by side
// this way.
func WithNoClobber() SaveOption {
	return func(o *saveOptions) {
		o.noClobber = true
	}
}

// WithValidation re-reads the file after writing to verify integrity.
//
// The written file must match the data byte for byte and decode as a
// FLAC file.
func WithValidation() SaveOption {
	return func(o *saveOptions) {
		o.validate = true
	}
}

// WithPerm sets the permissions of the written file. Default is 0644.
func WithPerm(perm os.FileMode) SaveOption {
	return func(o *saveOptions) {
		o.perm = perm
	}
}
