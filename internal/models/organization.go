package models

import "time"

type Organization struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Domain        string    `gorm:"type:varchar(255);not null" json:"domain"`
	Industry      string    `gorm:"type:varchar(100)" json:"industry"`
	EmployeeCount int       `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Users        []User                  `gorm:"foreignKey:OrganizationID" json:"users,omitempty"`
	Teams        []Team                  `gorm:"foreignKey:OrganizationID" json:"teams,omitempty"`
	Tags         []Tag                   `gorm:"foreignKey:OrganizationID" json:"tags,omitempty"`
	CustomFields []CustomFieldDefinition `gorm:"foreignKey:OrganizationID" json:"custom_fields,omitempty"`
}
