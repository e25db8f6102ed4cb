package dto

import (
	"time"

	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// UserDTO represents a user in API responses. The password hash never
// leaves the store.
type UserDTO struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Department   string    `json:"department"`
	JobTitle     string    `json:"job_title"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

// TeamDTO represents a team in API responses
type TeamDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TagDTO represents a workspace tag in API responses
type TagDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// FieldDefinitionDTO represents a custom field definition with its enum
// options decoded.
type FieldDefinitionDTO struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	FieldType models.FieldType `json:"field_type"`
	Options   []string         `json:"options,omitempty"`
}

// OrganizationDTO represents the workspace organization in API responses
type OrganizationDTO struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Domain        string               `json:"domain"`
	Industry      string               `json:"industry"`
	EmployeeCount int                  `json:"employee_count"`
	CreatedAt     time.Time            `json:"created_at"`
	Teams         []TeamDTO            `json:"teams,omitempty"`
	Tags          []TagDTO             `json:"tags,omitempty"`
	CustomFields  []FieldDefinitionDTO `json:"custom_fields,omitempty"`
}

// SectionDTO represents a project section in API responses
type SectionDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          string               `json:"id"`
	TeamID      string               `json:"team_id"`
	OwnerID     string               `json:"owner_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProjectStatus `json:"status"`
	ProjectType models.ProjectType   `json:"project_type"`
	Color       string               `json:"color"`
	CreatedAt   time.Time            `json:"created_at"`
	DueDate     *time.Time           `json:"due_date"`
	Sections    []SectionDTO         `json:"sections,omitempty"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO                `json:"users"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []ProjectDTO             `json:"projects"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Department:   user.Department,
		JobTitle:     user.JobTitle,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		LastActiveAt: user.LastActiveAt,
	}
}

// ToTeamDTO converts a Team model to TeamDTO
func ToTeamDTO(team models.Team) TeamDTO {
	return TeamDTO{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		CreatedAt:   team.CreatedAt,
	}
}

// ToTagDTO converts a Tag model to TagDTO
func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:    tag.ID,
		Name:  tag.Name,
		Color: tag.Color,
	}
}

// ToFieldDefinitionDTO converts a CustomFieldDefinition to DTO
func ToFieldDefinitionDTO(field models.CustomFieldDefinition) FieldDefinitionDTO {
	return FieldDefinitionDTO{
		ID:        field.ID,
		Name:      field.Name,
		FieldType: field.FieldType,
		Options:   field.Options(),
	}
}

// ToOrganizationDTO converts an Organization model to OrganizationDTO,
// including whichever relations were preloaded.
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	dto := OrganizationDTO{
		ID:            org.ID,
		Name:          org.Name,
		Domain:        org.Domain,
		Industry:      org.Industry,
		EmployeeCount: org.EmployeeCount,
		CreatedAt:     org.CreatedAt,
	}

	if len(org.Teams) > 0 {
		dto.Teams = make([]TeamDTO, len(org.Teams))
		for i, team := range org.Teams {
			dto.Teams[i] = ToTeamDTO(team)
		}
	}

	if len(org.Tags) > 0 {
		dto.Tags = make([]TagDTO, len(org.Tags))
		for i, tag := range org.Tags {
			dto.Tags[i] = ToTagDTO(tag)
		}
	}

	if len(org.CustomFields) > 0 {
		dto.CustomFields = make([]FieldDefinitionDTO, len(org.CustomFields))
		for i, field := range org.CustomFields {
			dto.CustomFields[i] = ToFieldDefinitionDTO(field)
		}
	}

	return dto
}

// ToSectionDTO converts a Section model to SectionDTO
func ToSectionDTO(section models.Section) SectionDTO {
	return SectionDTO{
		ID:       section.ID,
		Name:     section.Name,
		Position: section.Position,
	}
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:          project.ID,
		TeamID:      project.TeamID,
		OwnerID:     project.OwnerID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		ProjectType: project.ProjectType,
		Color:       project.Color,
		CreatedAt:   project.CreatedAt,
		DueDate:     project.DueDate,
	}

	// Include sections if preloaded
	if len(project.Sections) > 0 {
		dto.Sections = make([]SectionDTO, len(project.Sections))
		for i, section := range project.Sections {
			dto.Sections[i] = ToSectionDTO(section)
		}
	}

	return dto
}

// ToUserListResponse converts a page of users to UserListResponse
func ToUserListResponse(users []models.User, params utils.PaginationParams, total int64) UserListResponse {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}

	return UserListResponse{
		Users:      items,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}

// ToProjectListResponse converts a page of projects to ProjectListResponse
func ToProjectListResponse(projects []models.Project, params utils.PaginationParams, total int64) ProjectListResponse {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}

	return ProjectListResponse{
		Projects:   items,
		Pagination: utils.NewPaginationResponse(params, total),
	}
}
