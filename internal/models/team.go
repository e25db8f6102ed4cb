package models

import "time"

type MembershipRole string

const (
	RoleAdmin  MembershipRole = "admin"
	RoleMember MembershipRole = "member"
)

type Team struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrganizationID string    `gorm:"type:varchar(36);not null;index" json:"organization_id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	Organization Organization     `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Memberships  []TeamMembership `gorm:"foreignKey:TeamID" json:"memberships,omitempty"`
	Projects     []Project        `gorm:"foreignKey:TeamID" json:"projects,omitempty"`
}

type TeamMembership struct {
	ID       string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	TeamID   string         `gorm:"type:varchar(36);not null;index" json:"team_id"`
	UserID   string         `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Role     MembershipRole `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	JoinedAt time.Time      `json:"joined_at"`

	// Relations
	Team Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
