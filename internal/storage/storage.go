package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hamyaran/admin-api/pkg/metrics"
)

// Store writes uploaded attachments to disk and hands back the URL path
// they are served from.
type Store interface {
	Save(file *multipart.FileHeader, subdir string) (string, error)
	Remove(url string) error
}

type diskStore struct {
	mediaDir string
	baseURL  string
	metrics  *metrics.Metrics
}

// NewDiskStore creates the media directory if needed.
func NewDiskStore(mediaDir, baseURL string, m *metrics.Metrics) (Store, error) {
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &diskStore{
		mediaDir: mediaDir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		metrics:  m,
	}, nil
}

// Save stores the upload under a random name, keeping only the original
// extension. Returns the public URL path for the stored file.
func (s *diskStore) Save(file *multipart.FileHeader, subdir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.mediaDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, src)
	if err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	if s.metrics != nil {
		s.metrics.UploadsStored.Inc()
		s.metrics.UploadBytes.Add(float64(n))
	}
	return s.baseURL + "/" + subdir + "/" + name, nil
}

// Remove deletes a previously stored file given its public URL. Unknown
// URLs are ignored so replacing a missing attachment never fails.
func (s *diskStore) Remove(url string) error {
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return nil
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.mediaDir, rel))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}
