package repository

import (
	"errors"
	"time"

	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// Storage errors
var (
	ErrEmptyBatch = errors.New("batch contains no records")
)

// Sink is the write side of the storage layer. The generation pipeline calls
// InsertBatch once per stage with everything that stage produced.
type Sink interface {
	// InsertBatch atomically writes an ordered, non-empty slice of records
	// to the named table.
	InsertBatch(table string, records interface{}) error
}

// DatasetReader is the read side of the storage layer, shared by the run
// summary, the stats command and the inspector API.
type DatasetReader interface {
	// CountRows counts the rows of one table.
	CountRows(table string) (int64, error)

	// TableCounts counts every seed table in stage order.
	TableCounts() ([]TableCount, error)

	// FindOrganization loads the organization with its teams, tags and
	// custom field definitions.
	FindOrganization() (*models.Organization, error)

	// ListUsers retrieves users with pagination
	ListUsers(params utils.PaginationParams) ([]models.User, int64, error)

	// ListProjects retrieves projects and their sections with pagination
	ListProjects(params utils.PaginationParams) ([]models.Project, int64, error)

	// ListTasks retrieves tasks with filtering and pagination
	ListTasks(filter TaskFilter) ([]models.Task, int64, error)

	// FindTaskByID finds a task by ID with optional preloading
	FindTaskByID(id string, preload ...string) (*models.Task, error)
}

// TableCount is one row of the per-table record summary.
type TableCount struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
}

// TaskFilter holds filtering options for listing tasks. Empty ID strings and
// nil pointers mean "no filter".
type TaskFilter struct {
	ProjectID   string
	SectionID   string
	AssigneeID  string
	Completed   *bool
	Priority    *models.TaskPriority
	DueDateFrom *time.Time
	DueDateTo   *time.Time

	// SortByDueDate orders by due date ascending with NULLs last; the
	// default order is newest first.
	SortByDueDate bool

	Page     int
	PageSize int
}
