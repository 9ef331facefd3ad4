package abxcounts

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
)

// OutputDir is where generated plots and exports are written: either a local
// folder or a gs://bucket/prefix.
type OutputDir struct {
	path   string
	client *storage.Client
}

// NewOutputDir prepares path for writing. Local folders are created if they
// do not exist yet. The storage client is only needed for gs:// paths.
func NewOutputDir(path string, client *storage.Client) (*OutputDir, error) {
	if IsGoogleStoragePath(path) {
		if client == nil {
			return nil, fmt.Errorf("%s: a google storage client is required to write gs:// paths", path)
		}
		if _, _, err := SplitGoogleStoragePath(path); err != nil {
			return nil, err
		}
		return &OutputDir{path: strings.TrimSuffix(path, "/"), client: client}, nil
	}

	path = ExpandHome(path)
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}

	return &OutputDir{path: path}, nil
}

// Path returns the location of name inside the output directory.
func (o *OutputDir) Path(name string) string {
	if IsGoogleStoragePath(o.path) {
		return o.path + "/" + name
	}
	return filepath.Join(o.path, name)
}

// Create opens name for writing, truncating any previous content. The caller
// must Close the writer; for Google Storage the object only becomes visible
// once Close succeeds.
func (o *OutputDir) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if o.client != nil {
		bucketName, objectName, err := SplitGoogleStoragePath(o.Path(name))
		if err != nil {
			return nil, err
		}
		return o.client.Bucket(bucketName).Object(objectName).NewWriter(ctx), nil
	}

	return os.Create(o.Path(name))
}

// WriteFile creates name and hands it to fill, closing it afterwards. If
// fill fails, nothing is left behind: a Google Storage upload is abandoned
// and a local file is removed.
func (o *OutputDir) WriteFile(ctx context.Context, name string, fill func(io.Writer) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := o.Create(ctx, name)
	if err != nil {
		return err
	}

	if err := fill(w); err != nil {
		// The storage writer discards its upload once its context is done.
		cancel()
		w.Close()
		if o.client == nil {
			os.Remove(o.Path(name))
		}
		return err
	}

	return w.Close()
}
