package models

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

type ProjectType string

const (
	ProjectTypeSprint     ProjectType = "sprint"
	ProjectTypeKanban     ProjectType = "kanban"
	ProjectTypeCampaign   ProjectType = "campaign"
	ProjectTypeOperations ProjectType = "operations"
)

type Project struct {
	ID          string        `gorm:"type:varchar(36);primaryKey" json:"id"`
	TeamID      string        `gorm:"type:varchar(36);not null;index" json:"team_id"`
	OwnerID     string        `gorm:"type:varchar(36);not null" json:"owner_id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	ProjectType ProjectType   `gorm:"type:varchar(20);not null" json:"project_type"`
	Color       string        `gorm:"type:varchar(20)" json:"color"`
	CreatedAt   time.Time     `json:"created_at"`
	DueDate     *time.Time    `json:"due_date"`

	// Relations
	Team     Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Owner    User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Sections []Section `gorm:"foreignKey:ProjectID" json:"sections,omitempty"`
	Tasks    []Task    `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

type Section struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProjectID string    `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
