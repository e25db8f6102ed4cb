package generators

import (
	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

// tagDefinition pairs a workspace label with its display color.
type tagDefinition struct {
	name  string
	color string
}

var tagDefinitions = []tagDefinition{
	{"bug", "red"},
	{"feature", "blue"},
	{"urgent", "red"},
	{"documentation", "purple"},
	{"tech-debt", "orange"},
	{"needs-review", "yellow"},
	{"blocked", "red"},
	{"quick-win", "green"},
	{"customer-request", "blue"},
	{"internal", "gray"},
	{"improvement", "teal"},
	{"security", "red"},
}

const maxTagsPerTask = 3

// TagGenerator produces the organization's label set and the per-task
// associations.
type TagGenerator struct {
	env *Env
}

func NewTagGenerator(env *Env) *TagGenerator {
	return &TagGenerator{env: env}
}

// Generate creates the fixed label set for the organization.
func (g *TagGenerator) Generate(org *models.Organization) []models.Tag {
	if org == nil {
		return nil
	}

	r := g.env.Rand
	tags := make([]models.Tag, 0, len(tagDefinitions))
	for _, def := range tagDefinitions {
		tags = append(tags, models.Tag{
			ID:             utils.NewID(r),
			OrganizationID: org.ID,
			Name:           def.name,
			Color:          def.color,
		})
	}
	return tags
}

// Associations labels the configured share of tasks with 1..3 distinct tags
// drawn without replacement.
func (g *TagGenerator) Associations(tasks []models.Task, tags []models.Tag, ratio float64) []models.TaskTag {
	if len(tasks) == 0 || len(tags) == 0 {
		return nil
	}

	r := g.env.Rand
	var taskTags []models.TaskTag

	for _, task := range tasks {
		if r.Float64() > ratio {
			continue
		}

		count := 1 + r.Intn(maxTagsPerTask)
		if count > len(tags) {
			count = len(tags)
		}

		for _, idx := range r.Perm(len(tags))[:count] {
			taskTags = append(taskTags, models.TaskTag{
				TaskID: task.ID,
				TagID:  tags[idx].ID,
			})
		}
	}
	return taskTags
}
