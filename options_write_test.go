package backup

import "testing"

func TestSaveOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := defaultSaveOptions()

		if opts.backupSuffix != "" {
			t.Errorf("expected empty backupSuffix, got %q", opts.backupSuffix)
		}
		if opts.noClobber {
			t.Error("expected noClobber to be false")
		}
		if opts.validate {
			t.Error("expected validate to be false")
		}
		if opts.perm != 0o644 {
			t.Errorf("expected perm 0644, got %v", opts.perm)
		}
	})

	t.Run("all options combined", func(t *testing.T) {
		opts := defaultSaveOptions()

		options := []SaveOption{
			WithBackup(".backup"),
			WithNoClobber(),
			WithValidation(),
			WithPerm(0o600),
		}
		for _, opt := range options {
			opt(opts)
		}

		if opts.backupSuffix != ".backup" {
			t.Errorf("expected backupSuffix %q, got %q", ".backup", opts.backupSuffix)
		}
		if !opts.noClobber {
			t.Error("expected noClobber to be true")
		}
		if !opts.validate {
			t.Error("expected validate to be true")
		}
		if opts.perm != 0o600 {
			t.Errorf("expected perm 0600, got %v", opts.perm)
		}
	})
}

func TestDecodeOptions(t *testing.T) {
	opts := applyOptions(nil)
	if opts.strictParsing || opts.ignoreWarnings || opts.maxArtworkSize != 0 || opts.path != "" {
		t.Errorf("unexpected defaults: %+v", opts)
	}

	opts = applyOptions([]Option{
		WithStrictParsing(),
		WithIgnoreWarnings(),
		WithMaxArtworkSize(10 * 1024 * 1024),
		WithPath("song.flac"),
	})
	if !opts.strictParsing || !opts.ignoreWarnings || opts.maxArtworkSize != 10*1024*1024 || opts.path != "song.flac" {
		t.Errorf("options not applied: %+v", opts)
	}
}
