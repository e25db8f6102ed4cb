package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/workseedhq/workseed/internal/models"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		table   string
		name    string
		columns string
	}{
		// Task indexes for filtering and sorting
		{&models.Task{}, "tasks", "idx_tasks_completed", "completed"},
		{&models.Task{}, "tasks", "idx_tasks_priority", "priority"},
		{&models.Task{}, "tasks", "idx_tasks_due_date", "due_date"},
		{&models.Task{}, "tasks", "idx_tasks_created_at", "created_at"},

		// Project indexes
		{&models.Project{}, "projects", "idx_projects_status", "status"},
		{&models.Project{}, "projects", "idx_projects_project_type", "project_type"},

		// User indexes
		{&models.User{}, "users", "idx_users_department", "department"},

		// Activity timeline indexes
		{&models.Comment{}, "comments", "idx_comments_created_at", "created_at"},
		{&models.Attachment{}, "attachments", "idx_attachments_uploaded_at", "uploaded_at"},
	}

	for _, idx := range indexes {
		// HasIndex resolves the check per driver, so reruns are no-ops
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
