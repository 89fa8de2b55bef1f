package backup

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Embed decodes data, sets tags, embeds cover as the front cover and
// returns the re-encoded file.
//
// A nil or empty cover leaves existing pictures untouched.
//
// Example:
//
//	out, err := backup.Embed(download, map[string]string{
//		"TITLE":       "Blue in Green",
//		"TRACKNUMBER": "3",
//	}, cover)
func Embed(data []byte, tags map[string]string, cover []byte, opts ...Option) ([]byte, error) {
	track, err := Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := track.SetTags(tags); err != nil {
		return nil, err
	}
	if len(cover) > 0 {
		if err := track.SetCover(cover); err != nil {
			return nil, err
		}
	}
	return track.Encode()
}

// EmbedJob is one input to EmbedMany.
type EmbedJob struct {
	Data  []byte
	Tags  map[string]string
	Cover []byte
}

// EmbedMany runs Embed on independent buffers concurrently.
//
// Jobs run in parallel using up to runtime.NumCPU() goroutines. Results
// are returned in the same order as jobs. If any job fails, or ctx is
// cancelled, the first error is returned and no results.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//
//	files, err := backup.EmbedMany(ctx, jobs, backup.WithLogger(logger))
func EmbedMany(ctx context.Context, jobs []EmbedJob, opts ...Option) ([][]byte, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([][]byte, len(jobs))
	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			out, err := Embed(job.Data, job.Tags, job.Cover, opts...)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
