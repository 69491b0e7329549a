package bloglib

import (
	"context"
	"fmt"

	"github.com/aiono/blogbuild/config"
	"github.com/aiono/blogbuild/output"
	"github.com/aiono/blogbuild/publisher"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Publish writes files to the publish dir, minifying them if configured.
func (s *Site) Publish(ctx context.Context, files output.Files) error {
	s.Log.Process("Publish", fmt.Sprintf("%d files to %s", len(files), s.Fs.PublishDirPath))

	g, ctx := errgroup.WithContext(ctx)
	items := make(chan output.File, config.GetNumWorkerMultiplier()*2)

	for i := 0; i < config.GetNumWorkerMultiplier(); i++ {
		g.Go(func() error {
			for f := range items {
				if err := s.publisher.Publish(publisher.DescriptorFor(f, s.formats, s.minify)); err != nil {
					return fmt.Errorf("publish %q: %w", f.Path, err)
				}
				s.stats.Files.Inc()
				s.stats.Bytes.Add(int64(len(f.Content)))
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(items)
		for _, f := range files {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case items <- f:
			}
		}
		return nil
	})

	return g.Wait()
}

// CleanPublishDir removes everything in the publish dir.
func (s *Site) CleanPublishDir() error {
	s.Log.Process("Clean", s.Fs.PublishDirPath)
	entries, err := afero.ReadDir(s.Fs.PublishDir, "")
	if err != nil {
		return err
	}
	for _, fi := range entries {
		if err := s.Fs.PublishDir.RemoveAll(fi.Name()); err != nil {
			return err
		}
	}
	return nil
}
