package video

import "time"

type Status string

const (
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUploaded, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Video is a persisted video asset. OutputFilename is non-empty only when
// Status is completed: claiming a transcode clears it and only the
// completed transition writes it back.
type Video struct {
	ID               int64     `gorm:"column:id;primaryKey" json:"id"`
	Owner            string    `gorm:"column:owner;index" json:"owner"`
	OriginalFilename string    `gorm:"column:original_filename" json:"original_filename"`
	StoredFilename   string    `gorm:"column:stored_filename" json:"-"`
	Status           Status    `gorm:"column:status;index" json:"status"`
	OutputFilename   string    `gorm:"column:output_filename" json:"output_filename,omitempty"`
	UploadedAt       time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
}

func (Video) TableName() string { return "videos" }
