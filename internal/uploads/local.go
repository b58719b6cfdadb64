package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes files to a directory served by the HTTP server
// under /uploads/.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	key := objectKey(filename)
	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

// Dir is the directory the server should expose as /uploads/.
func (s *LocalStore) Dir() string { return s.dir }
