package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/workseedhq/workseed/internal/dto"
	apperrors "github.com/workseedhq/workseed/internal/errors"
	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/repository"
	"github.com/workseedhq/workseed/internal/utils"
)

// DatasetHandler serves the read-only inspector API over a generated
// dataset.
type DatasetHandler struct {
	reader repository.DatasetReader
}

func NewDatasetHandler(reader repository.DatasetReader) *DatasetHandler {
	return &DatasetHandler{reader: reader}
}

// Summary returns per-table row counts in generation order.
func (h *DatasetHandler) Summary(c *gin.Context) {
	counts, err := h.reader.TableCounts()
	if err != nil {
		apperrors.InternalError(c, "Failed to count tables")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tables": counts})
}

// GetOrganization returns the workspace organization with its teams, tags
// and custom field definitions.
func (h *DatasetHandler) GetOrganization(c *gin.Context) {
	org, err := h.reader.FindOrganization()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.NotFound(c, "No organization generated yet")
			return
		}
		apperrors.InternalError(c, "Failed to fetch organization")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationDTO(*org))
}

// ListUsers returns a page of the user roster.
func (h *DatasetHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.reader.ListUsers(params)
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users, params, total))
}

// ListProjects returns a page of projects with their section flows.
func (h *DatasetHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	projects, total, err := h.reader.ListProjects(params)
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects, params, total))
}

// ListTasks returns a page of tasks matching the query filters. Invalid
// filter values are rejected rather than silently ignored.
func (h *DatasetHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.TaskFilter{
		ProjectID:  c.Query("project_id"),
		SectionID:  c.Query("section_id"),
		AssigneeID: c.Query("assignee_id"),
		Page:       params.Page,
		PageSize:   params.Limit,
	}

	if value := c.Query("completed"); value != "" {
		completed, err := strconv.ParseBool(value)
		if err != nil {
			apperrors.BadRequest(c, "Invalid completed flag")
			return
		}
		filter.Completed = &completed
	}

	if value := c.Query("priority"); value != "" {
		priority := models.TaskPriority(value)
		switch priority {
		case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent:
			filter.Priority = &priority
		default:
			apperrors.BadRequest(c, "Invalid priority")
			return
		}
	}

	from, ok := dateQuery(c, "due_from")
	if !ok {
		return
	}
	filter.DueDateFrom = from

	to, ok := dateQuery(c, "due_to")
	if !ok {
		return
	}
	filter.DueDateTo = to

	if c.Query("sort") == "due_date" {
		filter.SortByDueDate = true
	}

	tasks, total, err := h.reader.ListTasks(filter)
	if err != nil {
		apperrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params, total))
}

// GetTask returns one task with its full activity: section, people,
// subtasks, comments, tags, field values and attachments.
func (h *DatasetHandler) GetTask(c *gin.Context) {
	task, err := h.reader.FindTaskByID(
		c.Param("id"),
		"Section", "Assignee", "Creator", "Subtasks",
		"Comments", "TaskTags.Tag", "FieldValues.Field", "Attachments",
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperrors.NotFound(c, "Task not found")
			return
		}
		apperrors.InternalError(c, "Failed to fetch task")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// dateQuery parses an optional RFC 3339 or date-only query parameter. On a
// malformed value it responds with 400 and reports false.
func dateQuery(c *gin.Context, key string) (*time.Time, bool) {
	value := c.Query(key)
	if value == "" {
		return nil, true
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, true
		}
	}

	apperrors.BadRequest(c, "Invalid "+key+" date")
	return nil, false
}
