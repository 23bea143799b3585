package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ErrFileTooLarge is returned when an upload exceeds the configured limit
var ErrFileTooLarge = errors.New("file exceeds the maximum upload size")

// Object describes a stored file
type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// LocalStore keeps uploaded deliverables on the local filesystem and serves
// them under baseURL
type LocalStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewLocalStore creates the upload directory if needed
func NewLocalStore(dir, baseURL string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Upload writes r under a unique key and returns its metadata
func (s *LocalStore) Upload(ctx context.Context, name string, r io.Reader) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = sanitizeName(name)
	key := uuid.NewString() + "-" + name
	target := filepath.Join(s.dir, key)

	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}

	// one extra byte detects oversize input without reading it all
	size, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && size > s.maxBytes {
		err = ErrFileTooLarge
	}
	if err != nil {
		_ = os.Remove(target)
		return nil, err
	}

	mtype, err := mimetype.DetectFile(target)
	if err != nil {
		_ = os.Remove(target)
		return nil, fmt.Errorf("detect content type: %w", err)
	}

	return &Object{
		Key:         key,
		URL:         s.baseURL + "/" + key,
		Name:        name,
		Size:        size,
		ContentType: mtype.String(),
	}, nil
}

// Delete removes a stored object; missing objects are not an error
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(s.dir, sanitizeName(key)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func sanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return "upload"
	}
	return name
}
