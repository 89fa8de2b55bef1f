package backup

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteFile writes data to path and returns the path actually written.
//
// This is an atomic operation: data goes to a temporary file in the same
// directory first, which then takes the final name. If any step fails, the
// destination is unchanged and the temporary file is removed.
//
// Options can be provided to customize write behavior:
//
//	written, err := backup.WriteFile("01 So What.flac", data,
//	    backup.WithNoClobber(),
//	    backup.WithValidation(),
//	)
func WriteFile(path string, data []byte, opts ...SaveOption) (string, error) { //nolint:gocyclo // Atomic file operations require sequential steps
	// Apply options
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	// Create temp file in same directory as output (for atomic rename)
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".murfie-backup-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure cleanup on any error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	if err := tempFile.Chmod(options.perm); err != nil {
		return "", fmt.Errorf("chmod temp file: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return "", fmt.Errorf("sync temp file: %w", err)
	}

	// Close temp file before rename
	if err := tempFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	var written string
	if options.noClobber {
		written, err = publishNew(tempPath, path)
		if err != nil {
			return "", err
		}
		// The data now lives under written; the temp name is just a link.
		_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
	} else {
		// Handle backup option (rename original to the backup name before replace)
		if options.backupSuffix != "" {
			if _, err := os.Stat(path); err == nil {
				if err := os.Rename(path, path+options.backupSuffix); err != nil {
					return "", fmt.Errorf("create backup: %w", err)
				}
			}
		}

		// Atomic rename temp -> output
		if err := os.Rename(tempPath, path); err != nil {
			return "", fmt.Errorf("rename temp to output: %w", err)
		}
		written = path
	}

	// Mark success so defer doesn't clean up
	success = true

	if options.validate {
		if err := validateWrittenFile(written, data); err != nil {
			return written, fmt.Errorf("validation failed: %w", err)
		}
	}

	return written, nil
}

// publishNew links tempPath under the first free name derived from path.
// A hard link fails when the name exists, so a concurrent writer cannot be
// overwritten between the check and the publish.
func publishNew(tempPath, path string) (string, error) {
	for attempt := 0; ; attempt++ {
		candidate := numberedPath(path, attempt)
		err := os.Link(tempPath, candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("create %s: %w", candidate, err)
		}
	}
}

// numberedPath returns path with "_n" inserted before the extension, or
// path itself for n == 0.
func numberedPath(path string, n int) string {
	if n == 0 {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + strconv.Itoa(n) + ext
}

// validateWrittenFile re-reads the file and checks it against data.
func validateWrittenFile(path string, data []byte) error {
	written, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("re-read: %w", err)
	}
	if !bytes.Equal(written, data) {
		return fmt.Errorf("content mismatch: wrote %d bytes, read back %d", len(data), len(written))
	}
	if _, err := Decode(written, WithPath(path)); err != nil {
		return fmt.Errorf("re-decode: %w", err)
	}
	return nil
}
