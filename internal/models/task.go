package models

import "time"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

type Task struct {
	ID          string       `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProjectID   string       `gorm:"type:varchar(36);not null;index" json:"project_id"`
	SectionID   *string      `gorm:"type:varchar(36);index" json:"section_id"`
	Name        string       `gorm:"type:varchar(500);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	AssigneeID  *string      `gorm:"type:varchar(36);index" json:"assignee_id"`
	CreatedBy   string       `gorm:"type:varchar(36);not null" json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	DueDate     *time.Time   `json:"due_date"`
	Completed   bool         `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time   `json:"completed_at"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`

	// Relations
	Project     Project            `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Section     *Section           `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Assignee    *User              `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Creator     User               `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Subtasks    []Subtask          `gorm:"foreignKey:ParentTaskID" json:"subtasks,omitempty"`
	Comments    []Comment          `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
	TaskTags    []TaskTag          `gorm:"foreignKey:TaskID" json:"-"`
	FieldValues []CustomFieldValue `gorm:"foreignKey:TaskID" json:"field_values,omitempty"`
	Attachments []Attachment       `gorm:"foreignKey:TaskID" json:"attachments,omitempty"`
}

type Subtask struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	ParentTaskID string     `gorm:"type:varchar(36);not null;index" json:"parent_task_id"`
	Name         string     `gorm:"type:varchar(500);not null" json:"name"`
	AssigneeID   *string    `gorm:"type:varchar(36)" json:"assignee_id"`
	CreatedAt    time.Time  `json:"created_at"`
	DueDate      *time.Time `json:"due_date"`
	Completed    bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`

	// Relations
	ParentTask Task  `gorm:"foreignKey:ParentTaskID" json:"-"`
	Assignee   *User `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
}
