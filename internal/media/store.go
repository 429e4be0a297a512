package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// Store writes uploaded media to a local directory and hands back the URL
// the file will be served under.
type Store struct {
	dir     string
	baseURL string
}

func NewStore(dir, baseURL string) *Store {
	return &Store{dir: dir, baseURL: baseURL}
}

// Save persists one multipart upload with a generated name preserving the
// original extension.
func (s *Store) Save(fh *multipart.FileHeader, kind string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(fh.Filename)
	name := fmt.Sprintf("%s_%d%s", kind, time.Now().UnixNano(), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	if s.baseURL == "" {
		return "/uploads/" + name, nil
	}
	return s.baseURL + "/uploads/" + name, nil
}
