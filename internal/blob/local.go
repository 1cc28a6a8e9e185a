package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// urlPrefix is the public path segment under which stored images are served.
const urlPrefix = "/uploads/"

// allowedExts mirrors the image formats the upload endpoint accepts.
var allowedExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// LocalStore keeps images on the local filesystem and serves them under
// baseURL + /uploads/. Object names are random UUIDs, so client filenames
// never reach the disk.
type LocalStore struct {
	dir     string
	baseURL string
}

var _ Store = (*LocalStore)(nil)

// NewLocalStore ensures dir exists and returns a store whose URLs are rooted
// at baseURL (e.g. "http://localhost:8080").
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Dir returns the directory objects are stored in, for static file serving.
func (s *LocalStore) Dir() string { return s.dir }

// Save writes the contents to a new UUID-named file and returns its URL.
func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExts[ext]; !ok {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	objectName := uuid.NewString() + ext
	dst := filepath.Join(s.dir, objectName)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create object %q: %w", objectName, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write object %q: %w", objectName, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close object %q: %w", objectName, err)
	}

	return s.baseURL + urlPrefix + objectName, nil
}

// Delete removes the object a previously issued URL points at. URLs from
// other stores (e.g. an old CDN) are silently skipped; a missing file is not
// an error either, so Delete is idempotent.
func (s *LocalStore) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	objectName, ok := s.objectName(url)
	if !ok {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, objectName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove object %q: %w", objectName, err)
	}
	return nil
}

// objectName maps a URL back to the stored file name, rejecting anything not
// issued by this store or trying to escape the upload dir.
func (s *LocalStore) objectName(url string) (string, bool) {
	if !strings.HasPrefix(url, s.baseURL+urlPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(url, s.baseURL+urlPrefix)
	if name == "" || name != path.Base(name) {
		return "", false
	}
	return name, true
}
