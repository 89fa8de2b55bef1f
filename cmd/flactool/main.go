// Command flactool inspects and tags FLAC files.
//
// Usage:
//
//	flactool dump <file.flac>
//	flactool embed -o out.flac [-cover image] [-tag KEY=VALUE ...] <in.flac>
//	flactool version
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	backup "github.com/mbrakken/murfie-backup"
	"github.com/mbrakken/murfie-backup/internal/vorbis"
)

const usage = `usage:
  flactool dump <file.flac>
  flactool embed -o out.flac [-cover image] [-tag KEY=VALUE ...] <in.flac>
  flactool version
`

var errUsage = errors.New("invalid usage")

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Fatal().Err(err).Msg("flactool failed")
	}
}

func run(args []string, stdout io.Writer, logger zerolog.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "dump":
		if len(args) != 2 {
			return errUsage
		}
		return dump(args[1], stdout, logger)
	case "embed":
		return embed(args[1:], logger)
	case "version":
		fmt.Fprintln(stdout, backup.GetVersionInfo())
		return nil
	default:
		return errUsage
	}
}

// tagFlags collects repeated -tag KEY=VALUE flags.
type tagFlags map[string]string

func (f tagFlags) String() string {
	pairs := make([]string, 0, len(f))
	for k, v := range f {
		pairs = append(pairs, vorbis.Join(k, v))
	}
	return strings.Join(pairs, ",")
}

func (f tagFlags) Set(s string) error {
	key, value, err := vorbis.Split(s)
	if err != nil {
		return err
	}
	f[strings.ToUpper(key)] = value
	return nil
}

func embed(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("embed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("o", "", "output file")
	coverPath := fs.String("cover", "", "front cover image (JPEG, PNG or GIF)")
	tags := tagFlags{}
	fs.Var(tags, "tag", "KEY=VALUE comment, repeatable")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *out == "" || fs.NArg() != 1 {
		return errUsage
	}

	input := fs.Arg(0)
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	var cover []byte
	if *coverPath != "" {
		if cover, err = os.ReadFile(*coverPath); err != nil {
			return err
		}
	}

	encoded, err := backup.Embed(data, tags, cover, backup.WithLogger(logger), backup.WithPath(input))
	if err != nil {
		return err
	}

	written, err := backup.WriteFile(*out, encoded, backup.WithNoClobber())
	if err != nil {
		return err
	}
	logger.Info().
		Str("input", input).
		Str("output", written).
		Int("tags", len(tags)).
		Bool("cover", cover != nil).
		Int("bytes", len(encoded)).
		Msg("embedded metadata")
	return nil
}
