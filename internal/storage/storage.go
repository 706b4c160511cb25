package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore persists uploaded media and returns a public URL for it
type ObjectStore interface {
	Save(dir, ext string, src io.Reader) (string, error)
	Remove(url string) error
}

// DiskStore stores objects on the local filesystem under a root directory
// and serves them under a base URL path.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates a disk-backed object store. The root directory is
// created on first use.
func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Save writes the object under dir with a generated name and returns its URL
func (s *DiskStore) Save(dir, ext string, src io.Reader) (string, error) {
	target := filepath.Join(s.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(target, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return s.baseURL + "/" + dir + "/" + name, nil
}

// Remove deletes the object behind a URL previously returned by Save.
// Unknown URLs are ignored.
func (s *DiskStore) Remove(url string) error {
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return nil
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, rel))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
