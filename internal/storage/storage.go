package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Areas split the backing directory by asset class and by original vs
// derived artifacts.
const (
	AreaVideoOriginal   = "videos/original"
	AreaVideoTranscoded = "videos/transcoded"
	AreaImageOriginal   = "images/original"
	AreaImageThumbs     = "images/thumbs"
)

var areas = []string{AreaVideoOriginal, AreaVideoTranscoded, AreaImageOriginal, AreaImageThumbs}

// Store owns the on-disk layout. All names passed in are treated as bare
// filenames; anything that looks like a path is reduced to its base so a
// crafted name cannot escape its area.
type Store struct {
	baseDir string
}

func New(baseDir string) (*Store, error) {
	for _, area := range areas {
		if err := os.MkdirAll(filepath.Join(baseDir, area), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage area %s: %w", area, err)
		}
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) Path(area, name string) string {
	return filepath.Join(s.baseDir, area, filepath.Base(name))
}

func (s *Store) Exists(area, name string) bool {
	_, err := os.Stat(s.Path(area, name))
	return err == nil
}

// Save writes r to a new file in the given area. The file is removed on a
// partial write; existing files are never overwritten in place because
// stored names are unique per upload.
func (s *Store) Save(area, name string, r io.Reader) error {
	path := s.Path(area, name)
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *Store) Open(area, name string) (*os.File, error) {
	return os.Open(s.Path(area, name))
}

func (s *Store) Remove(area, name string) error {
	return os.Remove(s.Path(area, name))
}

// StoredName builds a collision-resistant on-disk name for an upload:
// a fresh UUID plus a sanitized remnant of the client's filename, which is
// kept only as a debugging aid and never trusted for routing.
func StoredName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s_%s%s", uuid.New().String(), sanitizeName(original), ext)
}

// BaseName strips the extension from a stored filename; derived artifact
// names are built from it.
func BaseName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
