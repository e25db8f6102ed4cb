package generators

import (
	"context"
	"time"

	"github.com/workseedhq/workseed/internal/distribution"
	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

const (
	// taskCreationLagDays keeps tasks at least a week old so follow-up
	// activity (comments, attachments) has room in the timeline.
	taskCreationLagDays = 7

	subtaskProbability         = 0.30
	maxSubtasksPerTask         = 3
	subtaskAssignProbability   = 0.70
	subtaskCompleteProbability = 0.90
	subtaskCreationSpanHours   = 48
)

// TaskGenerator produces tasks and their subtasks.
type TaskGenerator struct {
	env *Env
}

func NewTaskGenerator(env *Env) *TaskGenerator {
	return &TaskGenerator{env: env}
}

// Generate builds tasksPerProject tasks for every project. Task names come
// from the content library, which asks the enrichment service when one is
// configured and falls back to templates otherwise. Each project draws one
// completion rate from its type's range; roughly a third of tasks carry
// subtasks.
func (g *TaskGenerator) Generate(ctx context.Context, projects []models.Project, sections []models.Section, users []models.User, tasksPerProject int) ([]models.Task, []models.Subtask) {
	if len(projects) == 0 || len(users) == 0 || tasksPerProject <= 0 {
		return nil, nil
	}

	r := g.env.Rand

	projectSections := make(map[string][]models.Section, len(projects))
	for _, section := range sections {
		projectSections[section.ProjectID] = append(projectSections[section.ProjectID], section)
	}

	var tasks []models.Task
	var subtasks []models.Subtask

	for _, project := range projects {
		names := g.env.Content.TaskNames(ctx, project.Name, string(project.ProjectType), tasksPerProject)
		completionRate := distribution.CompletionRate(r, string(project.ProjectType))
		projSections := projectSections[project.ID]

		for _, name := range names {
			task := models.Task{
				ID:        utils.NewID(r),
				ProjectID: project.ID,
				Name:      name,
				CreatedBy: users[r.Intn(len(users))].ID,
			}

			if len(projSections) > 0 {
				sectionID := projSections[r.Intn(len(projSections))].ID
				task.SectionID = &sectionID
			}

			if distribution.ShouldAssign(r) {
				assigneeID := users[r.Intn(len(users))].ID
				task.AssigneeID = &assigneeID
			}

			task.CreatedAt = distribution.WorkdayTimestamp(r, project.CreatedAt, g.env.Now.AddDate(0, 0, -taskCreationLagDays))

			// Due dates are stored date-only
			if due := distribution.DueDate(r, g.env.Now); due != nil {
				day := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, due.Location())
				task.DueDate = &day
			}

			if r.Float64() < completionRate {
				task.Completed = true
				completedAt := distribution.CompletionTime(r, task.CreatedAt, g.env.Now)
				task.CompletedAt = &completedAt
			}

			kind := distribution.DescriptionKind(r)
			task.Description = g.env.Content.Description(ctx, name, string(project.ProjectType), kind)

			task.Priority = models.TaskPriority(distribution.Priority(r))

			tasks = append(tasks, task)

			if r.Float64() < subtaskProbability {
				count := 1 + r.Intn(maxSubtasksPerTask)
				for j := 0; j < count; j++ {
					subtasks = append(subtasks, g.subtask(&task, users))
				}
			}
		}
	}

	return tasks, subtasks
}

// subtask derives one checklist item from its parent: named after it, due
// with it, and completable only when the parent is complete.
func (g *TaskGenerator) subtask(parent *models.Task, users []models.User) models.Subtask {
	r := g.env.Rand

	subtask := models.Subtask{
		ID:           utils.NewID(r),
		ParentTaskID: parent.ID,
		Name:         g.env.Content.SubtaskName(parent.Name),
		CreatedAt:    parent.CreatedAt.Add(time.Duration(1+r.Intn(subtaskCreationSpanHours)) * time.Hour),
		DueDate:      parent.DueDate,
	}

	if r.Float64() < subtaskAssignProbability {
		assigneeID := users[r.Intn(len(users))].ID
		subtask.AssigneeID = &assigneeID
	}

	if parent.Completed && r.Float64() < subtaskCompleteProbability {
		subtask.Completed = true
		completedAt := distribution.CompletionTime(r, subtask.CreatedAt, g.env.Now)
		subtask.CompletedAt = &completedAt
	}

	return subtask
}
