package abxcounts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// IsGoogleStoragePath reports whether path points at a Google Storage object
// or prefix.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, "gs://")
}

// SplitGoogleStoragePath splits gs://bucket/some/object into its bucket and
// object names. The object part may be empty for a bare bucket.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if pathParts[0] == "" {
		return "", "", fmt.Errorf("No bucket name found in google storage path %q", path)
	}
	if len(pathParts) == 1 {
		return pathParts[0], "", nil
	}

	return pathParts[0], pathParts[1], nil
}

// OpenSource opens a local file, a gs:// object or an http(s) URL for
// reading. The storage client is only consulted for gs:// paths and may be
// nil otherwise.
func OpenSource(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	switch {
	case IsGoogleStoragePath(path):
		if client == nil {
			return nil, fmt.Errorf("%s: a google storage client is required to read gs:// paths", path)
		}

		bucketName, objectName, err := SplitGoogleStoragePath(path)
		if err != nil {
			return nil, err
		}

		rdr, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return rdr, nil

	case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("%s: unexpected HTTP status %s", path, resp.Status)
		}

		return resp.Body, nil
	}

	return os.Open(ExpandHome(path))
}

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return path
		}
		path = filepath.Join(usr.HomeDir, path[2:])
	}

	return path
}
