package models

import "time"

type Comment struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	TaskID    string    `gorm:"type:varchar(36);not null;index" json:"task_id"`
	AuthorID  string    `gorm:"type:varchar(36);not null" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Task   Task `gorm:"foreignKey:TaskID" json:"-"`
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
