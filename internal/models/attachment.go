package models

import "time"

type Attachment struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	TaskID     string    `gorm:"type:varchar(36);not null;index" json:"task_id"`
	FileName   string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileType   string    `gorm:"type:varchar(20);not null" json:"file_type"`
	FileSize   int64     `gorm:"not null" json:"file_size"`
	UploadedBy string    `gorm:"type:varchar(36);not null" json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`

	// Relations
	Task     Task `gorm:"foreignKey:TaskID" json:"-"`
	Uploader User `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}
