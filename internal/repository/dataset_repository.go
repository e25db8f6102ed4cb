package repository

import (
	"gorm.io/gorm"

	"github.com/workseedhq/workseed/internal/database"
	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// GormDatasetReader is a GORM implementation of DatasetReader
type GormDatasetReader struct {
	db *gorm.DB
}

// NewDatasetReader creates a new DatasetReader
func NewDatasetReader(db *gorm.DB) DatasetReader {
	return &GormDatasetReader{db: db}
}

// CountRows counts the rows of one table
func (r *GormDatasetReader) CountRows(table string) (int64, error) {
	var count int64
	if err := r.db.Table(table).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TableCounts counts every seed table in stage order
func (r *GormDatasetReader) TableCounts() ([]TableCount, error) {
	tables := models.Tables()
	counts := make([]TableCount, 0, len(tables))
	for _, table := range tables {
		rows, err := r.CountRows(table.Name)
		if err != nil {
			return nil, err
		}
		counts = append(counts, TableCount{Table: table.Name, Rows: rows})
	}
	return counts, nil
}

// FindOrganization loads the organization with its org-level collections
func (r *GormDatasetReader) FindOrganization() (*models.Organization, error) {
	var org models.Organization
	err := r.db.
		Preload("Teams").
		Preload("Tags").
		Preload("CustomFields").
		First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ListUsers retrieves users with pagination
func (r *GormDatasetReader) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	var users []models.User
	query := r.db.Model(&models.User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("users.created_at ASC").
		Scopes(database.Paginate(params)).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListProjects retrieves projects and their sections with pagination
func (r *GormDatasetReader) ListProjects(params utils.PaginationParams) ([]models.Project, int64, error) {
	var projects []models.Project
	query := r.db.Model(&models.Project{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("projects.created_at ASC").
		Scopes(database.Paginate(params)).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.position ASC")
		}).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// ListTasks retrieves tasks with filtering and pagination
func (r *GormDatasetReader) ListTasks(filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})

	// Apply filters
	if filter.ProjectID != "" {
		query = query.Where("tasks.project_id = ?", filter.ProjectID)
	}
	if filter.SectionID != "" {
		query = query.Where("tasks.section_id = ?", filter.SectionID)
	}
	if filter.AssigneeID != "" {
		query = query.Where("tasks.assignee_id = ?", filter.AssigneeID)
	}
	if filter.Completed != nil {
		query = query.Where("tasks.completed = ?", *filter.Completed)
	}
	if filter.Priority != nil {
		query = query.Where("tasks.priority = ?", *filter.Priority)
	}
	if filter.DueDateFrom != nil {
		query = query.Where("tasks.due_date >= ?", *filter.DueDateFrom)
	}
	if filter.DueDateTo != nil {
		query = query.Where("tasks.due_date < ?", *filter.DueDateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query
	if filter.SortByDueDate {
		listQuery = listQuery.Order("CASE WHEN tasks.due_date IS NULL THEN 1 ELSE 0 END, tasks.due_date ASC")
	} else {
		listQuery = listQuery.Order("tasks.created_at DESC")
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	if err := listQuery.Preload("Assignee").Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// FindTaskByID finds a task by ID with optional preloading
func (r *GormDatasetReader) FindTaskByID(id string, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	// Apply preloading if specified
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, "tasks.id = ?", id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}
