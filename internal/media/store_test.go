package media

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func multipartFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "")

	fh := multipartFileHeader(t, "image", "sunset.jpg", "jpeg-bytes")
	url, err := store.Save(fh, "post")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/post_") || !strings.HasSuffix(url, ".jpg") {
		t.Fatalf("unexpected url: %s", url)
	}

	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("unexpected file contents")
	}
}

func TestSaveBaseURL(t *testing.T) {
	store := NewStore(t.TempDir(), "https://cdn.example.com")

	fh := multipartFileHeader(t, "video", "clip.mp4", "mp4-bytes")
	url, err := store.Save(fh, "post")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, "https://cdn.example.com/uploads/") {
		t.Fatalf("unexpected url: %s", url)
	}
}
