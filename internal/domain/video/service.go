package video

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"mediavault/internal/domain/identity"
	"mediavault/internal/storage"
	"mediavault/internal/transcode"
)

// Service owns the video asset lifecycle, including the transcode state
// machine: uploaded -> processing -> completed | failed, with failed
// re-enterable via a new transcode request.
type Service struct {
	repo     Repository
	store    *storage.Store
	executor transcode.Executor
	timeout  time.Duration
}

func NewService(repo Repository, store *storage.Store, executor transcode.Executor, timeout time.Duration) *Service {
	return &Service{repo: repo, store: store, executor: executor, timeout: timeout}
}

// Upload stores the file under a fresh opaque name and creates the row in
// the uploaded state.
func (s *Service) Upload(ctx context.Context, p identity.Principal, originalName string, r io.Reader) (*Video, error) {
	if originalName == "" {
		originalName = "video"
	}
	stored := storage.StoredName(originalName)
	if err := s.store.Save(storage.AreaVideoOriginal, stored, r); err != nil {
		return nil, err
	}

	v := &Video{
		Owner:            p.Subject,
		OriginalFilename: originalName,
		StoredFilename:   stored,
		Status:           StatusUploaded,
		UploadedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		_ = s.store.Remove(storage.AreaVideoOriginal, stored)
		return nil, fmt.Errorf("failed to save video record: %w", err)
	}
	return v, nil
}

// Get fetches the record and applies the ownership policy. The order is
// fixed: fetch, then check, so a missing id reads as not found and a
// foreign id as forbidden.
func (s *Service) Get(ctx context.Context, p identity.Principal, id int64) (*Video, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(v.Owner) {
		return nil, ErrForbidden
	}
	return v, nil
}

// List returns a page of rows, owner-scoped unless the principal is an
// admin. Limit and offset are assumed validated by the caller.
func (s *Service) List(ctx context.Context, p identity.Principal, status Status, limit, offset int) ([]Video, error) {
	f := ListFilter{Status: status, Limit: limit, Offset: offset}
	if !p.IsAdmin() {
		f.Owner = p.Subject
	}
	return s.repo.List(ctx, f)
}

// RequestTranscode drives one pass of the state machine. The transition
// into processing is a conditional write on the status column: of N
// concurrent requests exactly one claims the row and runs the executor,
// the rest observe processing. Completed and failed rows may be
// re-requested, which re-enters processing (manual retry).
func (s *Service) RequestTranscode(ctx context.Context, p identity.Principal, id int64) (*Video, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(v.Owner) {
		return nil, ErrForbidden
	}
	if !s.store.Exists(storage.AreaVideoOriginal, v.StoredFilename) {
		return nil, ErrSourceMissing
	}

	claimed, err := s.repo.ClaimProcessing(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// another request holds the job; report its state, never start
		// a second execution
		return s.repo.GetByID(ctx, id)
	}

	outName := TranscodedName(v.StoredFilename)
	inPath := s.store.Path(storage.AreaVideoOriginal, v.StoredFilename)
	outPath := s.store.Path(storage.AreaVideoTranscoded, outName)

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// Terminal state writes use a detached context: a caller disconnect
	// mid-run must not strand the row in processing.
	writeCtx := context.WithoutCancel(ctx)

	if err := s.executor.Run(runCtx, inPath, outPath); err != nil {
		log.Printf("transcode failed video_id=%d error=%v", id, err)
		_ = s.store.Remove(storage.AreaVideoTranscoded, outName)
		if failErr := s.repo.FailProcessing(writeCtx, id); failErr != nil {
			log.Printf("failed to record transcode failure video_id=%d error=%v", id, failErr)
		}
		return nil, ErrTranscodeFailed
	}

	if err := s.repo.FinishProcessing(writeCtx, id, outName); err != nil {
		return nil, err
	}
	return s.repo.GetByID(writeCtx, id)
}

// OriginalFile resolves the download path of the stored original.
func (s *Service) OriginalFile(ctx context.Context, p identity.Principal, id int64) (path, downloadName string, err error) {
	v, err := s.Get(ctx, p, id)
	if err != nil {
		return "", "", err
	}
	if !s.store.Exists(storage.AreaVideoOriginal, v.StoredFilename) {
		return "", "", ErrSourceMissing
	}
	return s.store.Path(storage.AreaVideoOriginal, v.StoredFilename), v.OriginalFilename, nil
}

// TranscodedFile resolves the download path of the completed rendition.
// A row that is not completed reads as not ready; a completed row whose
// file vanished reads as missing.
func (s *Service) TranscodedFile(ctx context.Context, p identity.Principal, id int64) (path, downloadName string, err error) {
	v, err := s.Get(ctx, p, id)
	if err != nil {
		return "", "", err
	}
	if v.Status != StatusCompleted || v.OutputFilename == "" {
		return "", "", ErrNotReady
	}
	if !s.store.Exists(storage.AreaVideoTranscoded, v.OutputFilename) {
		return "", "", ErrOutputMissing
	}
	return s.store.Path(storage.AreaVideoTranscoded, v.OutputFilename), v.OutputFilename, nil
}

// TranscodedName derives the rendition's deterministic output name from
// the stored name: same base, fixed suffix and container.
func TranscodedName(storedFilename string) string {
	return storage.BaseName(storedFilename) + "_720p.mp4"
}
