package models

type Tag struct {
	ID             string `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrganizationID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_tags_org_name" json:"organization_id"`
	Name           string `gorm:"type:varchar(100);not null;uniqueIndex:idx_tags_org_name" json:"name"`
	Color          string `gorm:"type:varchar(20)" json:"color"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

type TaskTag struct {
	TaskID string `gorm:"type:varchar(36);primaryKey" json:"task_id"`
	TagID  string `gorm:"type:varchar(36);primaryKey" json:"tag_id"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
	Tag  Tag  `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}
