package image

import "time"

// Image is a persisted image asset, fully finalized at upload time.
// ThumbFilename stays empty when thumbnail derivation failed; the upload
// itself still succeeds.
type Image struct {
	ID               int64     `gorm:"column:id;primaryKey" json:"id"`
	Owner            string    `gorm:"column:owner;index" json:"owner"`
	OriginalFilename string    `gorm:"column:original_filename" json:"original_filename"`
	StoredFilename   string    `gorm:"column:stored_filename" json:"-"`
	ThumbFilename    string    `gorm:"column:thumb_filename" json:"thumb_filename,omitempty"`
	UploadedAt       time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
}

func (Image) TableName() string { return "images" }
