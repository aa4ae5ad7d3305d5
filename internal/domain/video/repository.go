package video

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ListFilter scopes a listing. Owner == "" means no owner scoping (admin).
type ListFilter struct {
	Owner  string
	Status Status
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, v *Video) error
	GetByID(ctx context.Context, id int64) (*Video, error)
	List(ctx context.Context, f ListFilter) ([]Video, error)

	// ClaimProcessing is the single atomic transition into processing.
	// It succeeds only when the row is currently not processing, and
	// clears any stale output filename in the same write. Returns false
	// when another request holds the claim.
	ClaimProcessing(ctx context.Context, id int64) (bool, error)

	// FinishProcessing moves processing -> completed and records the
	// output name. FailProcessing moves processing -> failed. Both are
	// conditional on the row still being in processing.
	FinishProcessing(ctx context.Context, id int64, outputFilename string) error
	FailProcessing(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, v *Video) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Video, error) {
	var v Video
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Video, error) {
	q := r.db.WithContext(ctx).Model(&Video{})
	if f.Owner != "" {
		q = q.Where("owner = ?", f.Owner)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var videos []Video
	err := q.Order("id DESC").Limit(f.Limit).Offset(f.Offset).Find(&videos).Error
	return videos, err
}

func (r *repository) ClaimProcessing(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Video{}).
		Where("id = ? AND status <> ?", id, StatusProcessing).
		Updates(map[string]interface{}{
			"status":          StatusProcessing,
			"output_filename": "",
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) FinishProcessing(ctx context.Context, id int64, outputFilename string) error {
	return r.db.WithContext(ctx).
		Model(&Video{}).
		Where("id = ? AND status = ?", id, StatusProcessing).
		Updates(map[string]interface{}{
			"status":          StatusCompleted,
			"output_filename": outputFilename,
		}).Error
}

func (r *repository) FailProcessing(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&Video{}).
		Where("id = ? AND status = ?", id, StatusProcessing).
		Update("status", StatusFailed).Error
}
