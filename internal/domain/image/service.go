package image

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"mediavault/internal/domain/identity"
	"mediavault/internal/storage"
)

// Service stores image originals and derives thumbnails synchronously at
// upload time. Thumbnailing is best effort: a corrupt or unsupported
// image still produces a record, just without a thumbnail.
type Service struct {
	repo  Repository
	store *storage.Store
}

func NewService(repo Repository, store *storage.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) Upload(ctx context.Context, p identity.Principal, originalName string, r io.Reader) (*Image, error) {
	if originalName == "" {
		originalName = "image"
	}
	stored := storage.StoredName(originalName)
	if err := s.store.Save(storage.AreaImageOriginal, stored, r); err != nil {
		return nil, err
	}

	thumbName := s.deriveThumbnail(stored)

	img := &Image{
		Owner:            p.Subject,
		OriginalFilename: originalName,
		StoredFilename:   stored,
		ThumbFilename:    thumbName,
		UploadedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, img); err != nil {
		_ = s.store.Remove(storage.AreaImageOriginal, stored)
		if thumbName != "" {
			_ = s.store.Remove(storage.AreaImageThumbs, thumbName)
		}
		return nil, fmt.Errorf("failed to save image record: %w", err)
	}
	return img, nil
}

// deriveThumbnail returns the thumbnail's stored name, or "" when
// derivation failed for any reason.
func (s *Service) deriveThumbnail(stored string) string {
	src, err := s.store.Open(storage.AreaImageOriginal, stored)
	if err != nil {
		log.Printf("thumbnail skipped stored=%s error=%v", stored, err)
		return ""
	}
	defer src.Close()

	var buf bytes.Buffer
	if err := renderThumbnail(src, &buf); err != nil {
		log.Printf("thumbnail failed stored=%s error=%v", stored, err)
		return ""
	}

	thumbName := ThumbName(stored)
	if err := s.store.Save(storage.AreaImageThumbs, thumbName, &buf); err != nil {
		log.Printf("thumbnail write failed stored=%s error=%v", stored, err)
		return ""
	}
	return thumbName
}

func (s *Service) Get(ctx context.Context, p identity.Principal, id int64) (*Image, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(img.Owner) {
		return nil, ErrForbidden
	}
	return img, nil
}

func (s *Service) List(ctx context.Context, p identity.Principal, limit, offset int) ([]Image, error) {
	f := ListFilter{Limit: limit, Offset: offset}
	if !p.IsAdmin() {
		f.Owner = p.Subject
	}
	return s.repo.List(ctx, f)
}

func (s *Service) OriginalFile(ctx context.Context, p identity.Principal, id int64) (path, downloadName string, err error) {
	img, err := s.Get(ctx, p, id)
	if err != nil {
		return "", "", err
	}
	if !s.store.Exists(storage.AreaImageOriginal, img.StoredFilename) {
		return "", "", ErrFileMissing
	}
	return s.store.Path(storage.AreaImageOriginal, img.StoredFilename), img.OriginalFilename, nil
}

// ThumbnailFile resolves the thumbnail path. An image without a derived
// thumbnail reads the same as one whose file vanished: not found.
func (s *Service) ThumbnailFile(ctx context.Context, p identity.Principal, id int64) (path, downloadName string, err error) {
	img, err := s.Get(ctx, p, id)
	if err != nil {
		return "", "", err
	}
	if img.ThumbFilename == "" {
		return "", "", ErrFileMissing
	}
	if !s.store.Exists(storage.AreaImageThumbs, img.ThumbFilename) {
		return "", "", ErrFileMissing
	}
	return s.store.Path(storage.AreaImageThumbs, img.ThumbFilename), img.ThumbFilename, nil
}

// ThumbName derives the thumbnail's stored name from the original's.
func ThumbName(storedFilename string) string {
	return storage.BaseName(storedFilename) + "_thumb.jpg"
}
