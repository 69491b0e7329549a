package publisher

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/locker"
	"github.com/aiono/blogbuild/helpers"
	"github.com/aiono/blogbuild/minifiers"
	"github.com/aiono/blogbuild/output"
	"github.com/spf13/afero"
)

// Publisher publishes a result file.
type Publisher interface {
	Publish(d Descriptor) error
}

// Descriptor describes the needed publishing chain for an item.
type Descriptor struct {
	// The content to publish.
	Src io.Reader

	// The OutputFormat of the this content.
	OutputFormat output.Format

	// Where to publish this content. This is a filesystem-relative path.
	TargetPath string

	// Enable to minify the output using the OutputFormat defined above to
	// pick the correct minifier configuration.
	Minify bool
}

// NewDestinationPublisher creates a new DestinationPublisher writing to fs.
func NewDestinationPublisher(fs afero.Fs, min minifiers.Client) DestinationPublisher {
	return DestinationPublisher{
		fs:    fs,
		min:   min,
		locks: locker.NewLocker(),
	}
}

// DestinationPublisher is the default and currently only publisher. This
// publisher prepares and publishes an item to the defined destination, e.g. /public.
type DestinationPublisher struct {
	fs    afero.Fs
	min   minifiers.Client
	locks *locker.Locker
}

// Publish applies any relevant transformations and writes the file
// to its destination, e.g. /public.
// Concurrent writes to the same TargetPath are serialized.
func (p DestinationPublisher) Publish(d Descriptor) error {
	if d.TargetPath == "" {
		return errors.New("publish: must provide a TargetPath")
	}

	src := d.Src

	if d.Minify && !d.OutputFormat.IsBinary {
		var b bytes.Buffer
		if err := p.min.Minify(d.OutputFormat.MediaType, &b, d.Src); err != nil {
			return fmt.Errorf("failed to process %q: %w", d.TargetPath, err)
		}

		// This is now what we write to disk.
		src = &b
	}

	p.locks.Lock(d.TargetPath)
	defer p.locks.Unlock(d.TargetPath)

	f, err := helpers.OpenFileForWriting(p.fs, d.TargetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, src)

	return err
}

// DescriptorFor creates the Descriptor for one build output.
func DescriptorFor(f output.File, formats output.Formats, minify bool) Descriptor {
	of, _ := formats.FromFilename(f.Path)
	return Descriptor{
		Src:          bytes.NewReader(f.Content),
		OutputFormat: of,
		TargetPath:   f.Path,
		Minify:       minify,
	}
}
