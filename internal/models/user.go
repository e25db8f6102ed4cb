package models

import "time"

type User struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrganizationID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_users_org_email" json:"organization_id"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_org_email" json:"email"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	PasswordHash   string    `gorm:"type:varchar(255)" json:"-"`
	Department     string    `gorm:"type:varchar(100)" json:"department"`
	JobTitle       string    `gorm:"type:varchar(150)" json:"job_title"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	LastActiveAt   time.Time `json:"last_active_at"`

	// Relations
	Organization  Organization     `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Memberships   []TeamMembership `gorm:"foreignKey:UserID" json:"-"`
	AssignedTasks []Task           `gorm:"foreignKey:AssigneeID" json:"-"`
	CreatedTasks  []Task           `gorm:"foreignKey:CreatedBy" json:"-"`
}
