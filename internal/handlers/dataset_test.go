package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/repository"
)

type DatasetHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *DatasetHandler
	router  *gin.Engine
	now     time.Time
}

func (suite *DatasetHandlerTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	tables := models.Tables()
	targets := make([]interface{}, len(tables))
	for i, table := range tables {
		targets[i] = table.Model
	}
	suite.Require().NoError(db.AutoMigrate(targets...))

	suite.handler = NewDatasetHandler(repository.NewDatasetReader(db))
	suite.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	api := suite.router.Group("/api")
	{
		api.GET("/summary", suite.handler.Summary)
		api.GET("/organization", suite.handler.GetOrganization)
		api.GET("/users", suite.handler.ListUsers)
		api.GET("/projects", suite.handler.ListProjects)
		api.GET("/tasks", suite.handler.ListTasks)
		api.GET("/tasks/:id", suite.handler.GetTask)
	}
}

func (suite *DatasetHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// get performs a GET request against the test router
func (suite *DatasetHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DatasetHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// Helper to create a test organization with one team, tag and custom field
func (suite *DatasetHandlerTestSuite) createTestOrganization() *models.Organization {
	enumOptions := `["XS","S","M","L","XL"]`
	org := &models.Organization{
		ID:            "org-1",
		Name:          "Acme Labs",
		Domain:        "acmelabs.io",
		Industry:      "B2B SaaS",
		EmployeeCount: 7500,
		CreatedAt:     suite.now.AddDate(0, 0, -730),
	}
	suite.Require().NoError(suite.db.Create(org).Error)
	suite.Require().NoError(suite.db.Create(&models.Team{
		ID: "team-1", OrganizationID: org.ID, Name: "Platform",
		Description: "The Platform team at our company.",
		CreatedAt:   suite.now.AddDate(0, 0, -700),
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.Tag{
		ID: "tag-1", OrganizationID: org.ID, Name: "bug", Color: "#FF5733",
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.CustomFieldDefinition{
		ID: "field-1", OrganizationID: org.ID, Name: "T-Shirt Size",
		FieldType: models.FieldTypeEnum, EnumOptions: &enumOptions,
	}).Error)
	return org
}

// Helper to create a test user
func (suite *DatasetHandlerTestSuite) createTestUser(id, email string, createdAt time.Time) *models.User {
	user := &models.User{
		ID:             id,
		OrganizationID: "org-1",
		Email:          email,
		Name:           "Test User",
		PasswordHash:   "$2a$04$notarealhashnotarealhashnotareal",
		Department:     "Engineering",
		JobTitle:       "Software Engineer",
		IsActive:       true,
		CreatedAt:      createdAt,
		LastActiveAt:   suite.now,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

// Helper to create a test project
func (suite *DatasetHandlerTestSuite) createTestProject(id string, createdAt time.Time) *models.Project {
	project := &models.Project{
		ID:          id,
		TeamID:      "team-1",
		OwnerID:     "user-1",
		Name:        "Q1 Platform Sprint",
		Description: "Project for tracking sprint work in Platform.",
		Status:      models.ProjectStatusActive,
		ProjectType: models.ProjectTypeSprint,
		Color:       "#4A90D9",
		CreatedAt:   createdAt,
	}
	suite.Require().NoError(suite.db.Create(project).Error)
	return project
}

// Helper to create a test section
func (suite *DatasetHandlerTestSuite) createTestSection(id, projectID, name string, position int) *models.Section {
	section := &models.Section{
		ID:        id,
		ProjectID: projectID,
		Name:      name,
		Position:  position,
		CreatedAt: suite.now.AddDate(0, 0, -60),
	}
	suite.Require().NoError(suite.db.Create(section).Error)
	return section
}

// Helper to create a test task
func (suite *DatasetHandlerTestSuite) createTestTask(id, projectID string, completed bool, priority models.TaskPriority, dueDate *time.Time, createdAt time.Time) *models.Task {
	task := &models.Task{
		ID:        id,
		ProjectID: projectID,
		Name:      "Fix onboarding flow",
		CreatedBy: "user-1",
		CreatedAt: createdAt,
		DueDate:   dueDate,
		Completed: completed,
		Priority:  priority,
	}
	if completed {
		completedAt := createdAt.Add(48 * time.Hour)
		task.CompletedAt = &completedAt
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

// TestSummary tests the per-table row count report
func (suite *DatasetHandlerTestSuite) TestSummary() {
	suite.createTestOrganization()
	suite.createTestUser("user-1", "ana@acmelabs.io", suite.now.AddDate(0, 0, -200))
	suite.createTestUser("user-2", "bo@acmelabs.io", suite.now.AddDate(0, 0, -150))

	w := suite.get("/api/summary")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	tables := response["tables"].([]interface{})
	assert.Len(suite.T(), tables, len(models.Tables()))

	// Counts come back in generation order
	first := tables[0].(map[string]interface{})
	assert.Equal(suite.T(), "organizations", first["table"])

	counts := make(map[string]float64)
	for _, entry := range tables {
		row := entry.(map[string]interface{})
		counts[row["table"].(string)] = row["rows"].(float64)
	}
	assert.Equal(suite.T(), float64(1), counts["organizations"])
	assert.Equal(suite.T(), float64(2), counts["users"])
	assert.Equal(suite.T(), float64(1), counts["teams"])
	assert.Equal(suite.T(), float64(0), counts["tasks"])
}

// TestGetOrganization_Success tests fetching the organization with relations
func (suite *DatasetHandlerTestSuite) TestGetOrganization_Success() {
	suite.createTestOrganization()

	w := suite.get("/api/organization")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "Acme Labs", response["name"])
	assert.Equal(suite.T(), "acmelabs.io", response["domain"])
	assert.Equal(suite.T(), float64(7500), response["employee_count"])

	teams := response["teams"].([]interface{})
	assert.Len(suite.T(), teams, 1)
	assert.Equal(suite.T(), "Platform", teams[0].(map[string]interface{})["name"])

	tags := response["tags"].([]interface{})
	assert.Len(suite.T(), tags, 1)
	assert.Equal(suite.T(), "bug", tags[0].(map[string]interface{})["name"])

	fields := response["custom_fields"].([]interface{})
	assert.Len(suite.T(), fields, 1)
	field := fields[0].(map[string]interface{})
	assert.Equal(suite.T(), "T-Shirt Size", field["name"])
	assert.Equal(suite.T(), "enum", field["field_type"])
	assert.Len(suite.T(), field["options"], 5)
}

// TestGetOrganization_NotFound tests fetching before any data was generated
func (suite *DatasetHandlerTestSuite) TestGetOrganization_NotFound() {
	w := suite.get("/api/organization")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "NOT_FOUND", response["code"])
	assert.Equal(suite.T(), "No organization generated yet", response["message"])
}

// TestListUsers_Paginates tests the paginated user roster
func (suite *DatasetHandlerTestSuite) TestListUsers_Paginates() {
	suite.createTestOrganization()
	suite.createTestUser("user-1", "ana@acmelabs.io", suite.now.AddDate(0, 0, -300))
	suite.createTestUser("user-2", "bo@acmelabs.io", suite.now.AddDate(0, 0, -200))
	suite.createTestUser("user-3", "cam@acmelabs.io", suite.now.AddDate(0, 0, -100))

	w := suite.get("/api/users?page=1&limit=2")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	users := response["users"].([]interface{})
	assert.Len(suite.T(), users, 2)

	// Roster order is oldest account first
	assert.Equal(suite.T(), "ana@acmelabs.io", users[0].(map[string]interface{})["email"])
	assert.Equal(suite.T(), "bo@acmelabs.io", users[1].(map[string]interface{})["email"])

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(suite.T(), float64(1), pagination["page"])
	assert.Equal(suite.T(), float64(2), pagination["limit"])
	assert.Equal(suite.T(), float64(3), pagination["total"])

	// Password hashes stay out of API responses
	assert.NotContains(suite.T(), w.Body.String(), "notarealhash")
	assert.NotContains(suite.T(), w.Body.String(), "password")
}

// TestListProjects_SectionsOrdered tests that project sections come back in
// board order regardless of insert order
func (suite *DatasetHandlerTestSuite) TestListProjects_SectionsOrdered() {
	suite.createTestOrganization()
	suite.createTestUser("user-1", "ana@acmelabs.io", suite.now.AddDate(0, 0, -200))
	project := suite.createTestProject("project-1", suite.now.AddDate(0, 0, -60))
	suite.createTestSection("section-2", project.ID, "In Progress", 1)
	suite.createTestSection("section-1", project.ID, "To Do", 0)
	suite.createTestSection("section-3", project.ID, "Done", 2)

	w := suite.get("/api/projects")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	projects := response["projects"].([]interface{})
	assert.Len(suite.T(), projects, 1)

	first := projects[0].(map[string]interface{})
	assert.Equal(suite.T(), "Q1 Platform Sprint", first["name"])
	assert.Equal(suite.T(), "sprint", first["project_type"])

	sections := first["sections"].([]interface{})
	assert.Len(suite.T(), sections, 3)
	assert.Equal(suite.T(), "To Do", sections[0].(map[string]interface{})["name"])
	assert.Equal(suite.T(), "In Progress", sections[1].(map[string]interface{})["name"])
	assert.Equal(suite.T(), "Done", sections[2].(map[string]interface{})["name"])
}

// TestListTasks_FilterByProject tests scoping the task list to one project
func (suite *DatasetHandlerTestSuite) TestListTasks_FilterByProject() {
	suite.createTestOrganization()
	suite.createTestUser("user-1", "ana@acmelabs.io", suite.now.AddDate(0, 0, -200))
	suite.createTestProject("project-1", suite.now.AddDate(0, 0, -60))
	suite.createTestProject("project-2", suite.now.AddDate(0, 0, -50))
	suite.createTestTask("task-1", "project-1", false, models.PriorityMedium, nil, suite.now.AddDate(0, 0, -10))
	suite.createTestTask("task-2", "project-1", false, models.PriorityLow, nil, suite.now.AddDate(0, 0, -9))
	suite.createTestTask("task-3", "project-2", false, models.PriorityHigh, nil, suite.now.AddDate(0, 0, -8))

	w := suite.get("/api/tasks?project_id=project-1")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	tasks := response["tasks"].([]interface{})
	assert.Len(suite.T(), tasks, 2)
	for _, entry := range tasks {
		assert.Equal(suite.T(), "project-1", entry.(map[string]interface{})["project_id"])
	}

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), pagination["total"])
}

// TestListTasks_FilterByCompletedAndPriority tests combining filters
func (suite *DatasetHandlerTestSuite) TestListTasks_FilterByCompletedAndPriority() {
	suite.createTestOrganization()
	suite.createTestUser("user-1", "ana@acmelabs.io", suite.now.AddDate(0, 0, -200))
	suite.createTestProject("project-1", suite.now.AddDate(0, 0, -60))
	suite.createTestTask("task-1", "project-1", true, models.PriorityUrgent, nil, suite.now.AddDate(0, 0, -10))
	suite.createTestTask("task-2", "project-1", false, models.PriorityUrgent, nil, suite.now.AddDate(0, 0, -9))
	suite.createTestTask("task-3", "project-1", false, models.PriorityLow, nil, suite.now.AddDate(0, 0, -8))

	w := suite.get("/api/tasks?completed=false&priority=urgent")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	tasks := response["tasks"].([]interface{})
	assert.Len(suite.T(), tasks, 1)
	assert.Equal(suite.T(), "task-2", tasks[0].(map[string]interface{})["id"])
}

// TestListTasks_InvalidCompleted tests rejection of a malformed completed flag
func (suite *DatasetHandlerTestSuite) TestListTasks_InvalidCompleted() {
	w := suite.get("/api/tasks?completed=maybe")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "INVALID_INPUT", response["code"])
	assert.Equal(suite.T(), "Invalid completed flag", response["message"])
}

// TestListTasks_InvalidPriority tests rejection of an unknown priority
func (suite *DatasetHandlerTestSuite) TestListTasks_InvalidPriority() {
	w := suite.get("/api/tasks?priority=critical")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "INVALID_INPUT", response["code"])
	assert.Equal(suite.T(), "Invalid priority", response["message"])
}

// TestListTasks_InvalidDueDate tests rejection of a malformed date filter
func (suite *DatasetHandlerTestSuite) TestListTasks_InvalidDueDate() {
	w := suite.get("/api/tasks?due_from=not-a-date")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "INVALID_INPUT", response["code"])
	assert.Equal(suite.T(), "Invalid due_from date", response["message"])
}

// TestListTasks_DueDateWindow tests the due date range filter. The upper
// bound is exclusive.
func (suite *DatasetHandlerTestSuite) TestListTasks_DueDateWindow() {
	suite.createTestOrganization()
	suite.createTestUser("user-1", "ana@acmelabs.io", suite.now.AddDate(0, 0, -200))
	suite.createTestProject("project-1", suite.now.AddDate(0, 0, -60))

	early := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	inside := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	boundary := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)
	suite.createTestTask("task-1", "project-1", false, models.PriorityMedium, &early, suite.now.AddDate(0, 0, -10))
	suite.createTestTask("task-2", "project-1", false, models.PriorityMedium, &inside, suite.now.AddDate(0, 0, -9))
	suite.createTestTask("task-3", "project-1", false, models.PriorityMedium, &boundary, suite.now.AddDate(0, 0, -8))
	suite.createTestTask("task-4", "project-1", false, models.PriorityMedium, nil, suite.now.AddDate(0, 0, -7))

	w := suite.get("/api/tasks?due_from=2026-03-15&due_to=2026-03-30")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	tasks := response["tasks"].([]interface{})
	assert.Len(suite.T(), tasks, 1)
	assert.Equal(suite.T(), "task-2", tasks[0].(map[string]interface{})["id"])
}

// TestListTasks_SortByDueDate tests due date ordering with undated tasks last
func (suite *DatasetHandlerTestSuite) TestListTasks_SortByDueDate() {
	suite.createTestOrganization()
	suite.createTestUser("user-1", "ana@acmelabs.io", suite.now.AddDate(0, 0, -200))
	suite.createTestProject("project-1", suite.now.AddDate(0, 0, -60))

	late := time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC)
	soon := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.createTestTask("task-1", "project-1", false, models.PriorityMedium, &late, suite.now.AddDate(0, 0, -10))
	suite.createTestTask("task-2", "project-1", false, models.PriorityMedium, &soon, suite.now.AddDate(0, 0, -9))
	suite.createTestTask("task-3", "project-1", false, models.PriorityMedium, nil, suite.now.AddDate(0, 0, -8))

	w := suite.get("/api/tasks?sort=due_date")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	tasks := response["tasks"].([]interface{})
	assert.Len(suite.T(), tasks, 3)
	assert.Equal(suite.T(), "task-2", tasks[0].(map[string]interface{})["id"])
	assert.Equal(suite.T(), "task-1", tasks[1].(map[string]interface{})["id"])
	assert.Equal(suite.T(), "task-3", tasks[2].(map[string]interface{})["id"])
}

// TestListTasks_Paginates tests task list pagination with the default
// newest-first ordering
func (suite *DatasetHandlerTestSuite) TestListTasks_Paginates() {
	suite.createTestOrganization()
	suite.createTestUser("user-1", "ana@acmelabs.io", suite.now.AddDate(0, 0, -200))
	suite.createTestProject("project-1", suite.now.AddDate(0, 0, -60))
	for i, id := range []string{"task-1", "task-2", "task-3", "task-4", "task-5"} {
		suite.createTestTask(id, "project-1", false, models.PriorityMedium, nil, suite.now.AddDate(0, 0, -10+i))
	}

	w := suite.get("/api/tasks?page=2&limit=2")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	tasks := response["tasks"].([]interface{})
	assert.Len(suite.T(), tasks, 2)
	assert.Equal(suite.T(), "task-3", tasks[0].(map[string]interface{})["id"])
	assert.Equal(suite.T(), "task-2", tasks[1].(map[string]interface{})["id"])

	pagination := response["pagination"].(map[string]interface{})
	assert.Equal(suite.T(), float64(2), pagination["page"])
	assert.Equal(suite.T(), float64(5), pagination["total"])
}

// TestGetTask_FullActivity tests the task detail view with every relation
func (suite *DatasetHandlerTestSuite) TestGetTask_FullActivity() {
	suite.createTestOrganization()
	creator := suite.createTestUser("user-1", "ana@acmelabs.io", suite.now.AddDate(0, 0, -200))
	assignee := suite.createTestUser("user-2", "bo@acmelabs.io", suite.now.AddDate(0, 0, -150))
	project := suite.createTestProject("project-1", suite.now.AddDate(0, 0, -60))
	section := suite.createTestSection("section-1", project.ID, "In Progress", 1)

	createdAt := suite.now.AddDate(0, 0, -30)
	dueDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	task := &models.Task{
		ID:          "task-1",
		ProjectID:   project.ID,
		SectionID:   &section.ID,
		Name:        "Fix onboarding flow",
		Description: "This task covers work related to fix onboarding flow.",
		AssigneeID:  &assignee.ID,
		CreatedBy:   creator.ID,
		CreatedAt:   createdAt,
		DueDate:     &dueDate,
		Priority:    models.PriorityHigh,
	}
	suite.Require().NoError(suite.db.Create(task).Error)

	suite.Require().NoError(suite.db.Create(&models.Subtask{
		ID: "subtask-1", ParentTaskID: task.ID, Name: "Draft the fix",
		CreatedAt: createdAt.Add(2 * time.Hour),
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.Comment{
		ID: "comment-1", TaskID: task.ID, AuthorID: creator.ID,
		Content: "Taking a look at this today.", CreatedAt: createdAt.Add(3 * time.Hour),
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.TaskTag{
		TaskID: task.ID, TagID: "tag-1",
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.CustomFieldValue{
		ID: "value-1", FieldID: "field-1", TaskID: task.ID, Value: "M",
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.Attachment{
		ID: "attachment-1", TaskID: task.ID, FileName: "mockup_3f2a1b.png",
		FileType: "png", FileSize: 204800, UploadedBy: creator.ID,
		UploadedAt: createdAt.Add(4 * time.Hour),
	}).Error)

	w := suite.get("/api/tasks/task-1")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "Fix onboarding flow", response["name"])
	assert.Equal(suite.T(), "high", response["priority"])

	taskSection := response["section"].(map[string]interface{})
	assert.Equal(suite.T(), "In Progress", taskSection["name"])

	taskAssignee := response["assignee"].(map[string]interface{})
	assert.Equal(suite.T(), "bo@acmelabs.io", taskAssignee["email"])

	taskCreator := response["creator"].(map[string]interface{})
	assert.Equal(suite.T(), "ana@acmelabs.io", taskCreator["email"])

	subtasks := response["subtasks"].([]interface{})
	assert.Len(suite.T(), subtasks, 1)
	assert.Equal(suite.T(), "Draft the fix", subtasks[0].(map[string]interface{})["name"])

	comments := response["comments"].([]interface{})
	assert.Len(suite.T(), comments, 1)
	assert.Equal(suite.T(), "Taking a look at this today.", comments[0].(map[string]interface{})["content"])

	tags := response["tags"].([]interface{})
	assert.Len(suite.T(), tags, 1)
	assert.Equal(suite.T(), "bug", tags[0].(map[string]interface{})["name"])

	fieldValues := response["field_values"].([]interface{})
	assert.Len(suite.T(), fieldValues, 1)
	fieldValue := fieldValues[0].(map[string]interface{})
	assert.Equal(suite.T(), "M", fieldValue["value"])
	valueField := fieldValue["field"].(map[string]interface{})
	assert.Equal(suite.T(), "T-Shirt Size", valueField["name"])
	assert.Len(suite.T(), valueField["options"], 5)

	attachments := response["attachments"].([]interface{})
	assert.Len(suite.T(), attachments, 1)
	assert.Equal(suite.T(), "mockup_3f2a1b.png", attachments[0].(map[string]interface{})["file_name"])

	assert.NotContains(suite.T(), w.Body.String(), "notarealhash")
}

// TestGetTask_NotFound tests fetching an unknown task
func (suite *DatasetHandlerTestSuite) TestGetTask_NotFound() {
	w := suite.get("/api/tasks/missing")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	response := suite.decode(w)
	assert.Equal(suite.T(), "NOT_FOUND", response["code"])
	assert.Equal(suite.T(), "Task not found", response["message"])
}

func TestDatasetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DatasetHandlerTestSuite))
}
