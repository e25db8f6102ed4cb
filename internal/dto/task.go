package dto

import (
	"time"

	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// SubtaskDTO represents a subtask in API responses
type SubtaskDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	AssigneeID  *string    `json:"assignee_id"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// CommentDTO represents a task comment in API responses
type CommentDTO struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Author    *UserDTO  `json:"author,omitempty"`
}

// AttachmentDTO represents a file attachment in API responses
type AttachmentDTO struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// FieldValueDTO represents a custom field value in API responses
type FieldValueDTO struct {
	FieldID string              `json:"field_id"`
	Value   string              `json:"value"`
	Field   *FieldDefinitionDTO `json:"field,omitempty"`
}

// TaskDTO represents a task with its activity in API responses
type TaskDTO struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"project_id"`
	SectionID   *string             `json:"section_id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	AssigneeID  *string             `json:"assignee_id"`
	CreatedBy   string              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	DueDate     *time.Time          `json:"due_date"`
	Completed   bool                `json:"completed"`
	CompletedAt *time.Time          `json:"completed_at"`
	Priority    models.TaskPriority `json:"priority"`

	Section     *SectionDTO     `json:"section,omitempty"`
	Assignee    *UserDTO        `json:"assignee,omitempty"`
	Creator     *UserDTO        `json:"creator,omitempty"`
	Subtasks    []SubtaskDTO    `json:"subtasks,omitempty"`
	Comments    []CommentDTO    `json:"comments,omitempty"`
	Tags        []TagDTO        `json:"tags,omitempty"`
	FieldValues []FieldValueDTO `json:"field_values,omitempty"`
	Attachments []AttachmentDTO `json:"attachments,omitempty"`
}

// TaskListItemDTO represents a task in list responses (minimal data)
type TaskListItemDTO struct {
	ID         string              `json:"id"`
	ProjectID  string              `json:"project_id"`
	SectionID  *string             `json:"section_id"`
	Name       string              `json:"name"`
	AssigneeID *string             `json:"assignee_id"`
	CreatedAt  time.Time           `json:"created_at"`
	DueDate    *time.Time          `json:"due_date"`
	Completed  bool                `json:"completed"`
	Priority   models.TaskPriority `json:"priority"`
	Assignee   *UserDTO            `json:"assignee,omitempty"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskListItemDTO        `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// Conversion functions

// ToSubtaskDTO converts a Subtask model to SubtaskDTO
func ToSubtaskDTO(subtask models.Subtask) SubtaskDTO {
	return SubtaskDTO{
		ID:          subtask.ID,
		Name:        subtask.Name,
		AssigneeID:  subtask.AssigneeID,
		CreatedAt:   subtask.CreatedAt,
		DueDate:     subtask.DueDate,
		Completed:   subtask.Completed,
		CompletedAt: subtask.CompletedAt,
	}
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        comment.ID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}

	// Include author if preloaded
	if comment.Author.ID != "" {
		author := ToUserDTO(comment.Author)
		dto.Author = &author
	}

	return dto
}

// ToAttachmentDTO converts an Attachment model to AttachmentDTO
func ToAttachmentDTO(attachment models.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:         attachment.ID,
		FileName:   attachment.FileName,
		FileType:   attachment.FileType,
		FileSize:   attachment.FileSize,
		UploadedBy: attachment.UploadedBy,
		UploadedAt: attachment.UploadedAt,
	}
}

// ToFieldValueDTO converts a CustomFieldValue to FieldValueDTO
func ToFieldValueDTO(value models.CustomFieldValue) FieldValueDTO {
	dto := FieldValueDTO{
		FieldID: value.FieldID,
		Value:   value.Value,
	}

	// Include the definition if preloaded
	if value.Field.ID != "" {
		field := ToFieldDefinitionDTO(value.Field)
		dto.Field = &field
	}

	return dto
}

// ToTaskDTO converts a Task model to TaskDTO, including whichever relations
// were preloaded.
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		SectionID:   task.SectionID,
		Name:        task.Name,
		Description: task.Description,
		AssigneeID:  task.AssigneeID,
		CreatedBy:   task.CreatedBy,
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
		Completed:   task.Completed,
		CompletedAt: task.CompletedAt,
		Priority:    task.Priority,
	}

	if task.Section != nil {
		section := ToSectionDTO(*task.Section)
		dto.Section = &section
	}

	if task.Assignee != nil {
		assignee := ToUserDTO(*task.Assignee)
		dto.Assignee = &assignee
	}

	// Include creator if preloaded
	if task.Creator.ID != "" {
		creator := ToUserDTO(task.Creator)
		dto.Creator = &creator
	}

	if len(task.Subtasks) > 0 {
		dto.Subtasks = make([]SubtaskDTO, len(task.Subtasks))
		for i, subtask := range task.Subtasks {
			dto.Subtasks[i] = ToSubtaskDTO(subtask)
		}
	}

	if len(task.Comments) > 0 {
		dto.Comments = make([]CommentDTO, len(task.Comments))
		for i, comment := range task.Comments {
			dto.Comments[i] = ToCommentDTO(comment)
		}
	}

	// Flatten the join rows to their tags
	if len(task.TaskTags) > 0 {
		dto.Tags = make([]TagDTO, 0, len(task.TaskTags))
		for _, taskTag := range task.TaskTags {
			if taskTag.Tag.ID != "" {
				dto.Tags = append(dto.Tags, ToTagDTO(taskTag.Tag))
			}
		}
	}

	if len(task.FieldValues) > 0 {
		dto.FieldValues = make([]FieldValueDTO, len(task.FieldValues))
		for i, value := range task.FieldValues {
			dto.FieldValues[i] = ToFieldValueDTO(value)
		}
	}

	if len(task.Attachments) > 0 {
		dto.Attachments = make([]AttachmentDTO, len(task.Attachments))
		for i, attachment := range task.Attachments {
			dto.Attachments[i] = ToAttachmentDTO(attachment)
		}
	}

	return dto
}

// ToTaskListItemDTO converts a Task model to TaskListItemDTO
func ToTaskListItemDTO(task models.Task) TaskListItemDTO {
	dto := TaskListItemDTO{
		ID:         task.ID,
		ProjectID:  task.ProjectID,
		SectionID:  task.SectionID,
		Name:       task.Name,
		AssigneeID: task.AssigneeID,
		CreatedAt:  task.CreatedAt,
		DueDate:    task.DueDate,
		Completed:  task.Completed,
		Priority:   task.Priority,
	}

	// Include assignee if preloaded
	if task.Assignee != nil {
		assignee := ToUserDTO(*task.Assignee)
		dto.Assignee = &assignee
	}

	return dto
}

// ToTaskListResponse converts a page of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64) TaskListResponse {
	items := make([]TaskListItemDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskListItemDTO(task)
	}

	return TaskListResponse{
		Tasks:      items,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}
