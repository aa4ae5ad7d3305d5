package image

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type ListFilter struct {
	Owner  string
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id int64) (*Image, error)
	List(ctx context.Context, f ListFilter) ([]Image, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, img *Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Image, error) {
	var img Image
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *repository) List(ctx context.Context, f ListFilter) ([]Image, error) {
	q := r.db.WithContext(ctx).Model(&Image{})
	if f.Owner != "" {
		q = q.Where("owner = ?", f.Owner)
	}
	var images []Image
	err := q.Order("id DESC").Limit(f.Limit).Offset(f.Offset).Find(&images).Error
	return images, err
}
