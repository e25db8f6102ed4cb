// Package content produces the human-readable text on generated entities:
// task names, descriptions, comments and subtask names. Text comes from a
// fixed template corpus with randomized slot fills, or opportunistically
// from an enrichment service when one is configured. Every producing method
// is total: service failures collapse to the template path and callers
// never see an error.
package content

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/workseedhq/workseed/internal/distribution"
)

// commentServiceProbability is the fraction of comments that attempt the
// enrichment service when one is configured.
const commentServiceProbability = 0.30

// subtaskNameLimit caps how much of the parent task name a subtask carries.
const subtaskNameLimit = 30

// Enricher is the optional content service. Any method may fail; the
// Library treats every failure as a signal to fall back to templates.
type Enricher interface {
	TaskNames(ctx context.Context, projectName, projectType string, count int) ([]string, error)
	Description(ctx context.Context, taskName, projectType string) (string, error)
	Comment(ctx context.Context, taskName, intent string) (string, error)
}

// Library produces entity text. A nil service means template-only output.
type Library struct {
	r       *rand.Rand
	service Enricher
	logger  *slog.Logger
}

// NewLibrary creates a Library drawing randomness from r.
func NewLibrary(r *rand.Rand, service Enricher, logger *slog.Logger) *Library {
	return &Library{r: r, service: service, logger: logger}
}

// Intents lists the comment intents in a fixed order.
func Intents() []string {
	return commentIntents
}

// TaskNames returns exactly count task names for a project. When a service
// is configured it is asked first; its answer is used only if it covers at
// least half the requested count, topped up from templates to keep the
// count exact.
func (l *Library) TaskNames(ctx context.Context, projectName, projectType string, count int) []string {
	if count <= 0 {
		return nil
	}

	var names []string
	if l.service != nil {
		generated, err := l.service.TaskNames(ctx, projectName, projectType, count)
		if err != nil {
			l.logger.Debug("task name enrichment failed, using templates",
				"project", projectName, "error", err)
		} else if len(generated)*2 >= count {
			names = generated
			if len(names) > count {
				names = names[:count]
			}
		}
	}

	for len(names) < count {
		names = append(names, l.taskName(projectType))
	}
	return names
}

// Description returns a task description for the given length kind: empty
// kind yields "", short a one-liner, detailed a fuller sentence or service
// text when the attempt succeeds.
func (l *Library) Description(ctx context.Context, taskName, projectType, kind string) string {
	switch kind {
	case distribution.DescriptionEmpty:
		return ""
	case distribution.DescriptionShort:
		return "Work on: " + taskName
	}

	if l.service != nil {
		text, err := l.service.Description(ctx, taskName, projectType)
		if err == nil {
			return text
		}
		l.logger.Debug("description enrichment failed, using template",
			"task", taskName, "error", err)
	}

	return "This task involves completing the following work: " + taskName +
		". Please update progress in comments."
}

// Comment returns comment text for the given intent. A configured service
// is attempted for a fixed fraction of calls.
func (l *Library) Comment(ctx context.Context, taskName, intent string) string {
	if l.service != nil && l.r.Float64() < commentServiceProbability {
		text, err := l.service.Comment(ctx, taskName, intent)
		if err == nil {
			return text
		}
		l.logger.Debug("comment enrichment failed, using template",
			"task", taskName, "intent", intent, "error", err)
	}

	templates, ok := commentTemplates[intent]
	if !ok {
		templates = commentTemplates[IntentStatusUpdate]
	}
	return l.fill(pick(l.r, templates), commentSlots, commentSlotOrder)
}

// SubtaskName derives a subtask name from its parent's.
func (l *Library) SubtaskName(parentName string) string {
	return pick(l.r, subtaskPrefixes) + " " + truncate(parentName, subtaskNameLimit)
}

// taskName builds one template task name for a project type.
func (l *Library) taskName(projectType string) string {
	templates, ok := taskTemplates[projectType]
	if !ok {
		templates = taskTemplates[defaultTaskType]
	}
	return l.fill(pick(l.r, templates), taskSlots, taskSlotOrder)
}

// fill replaces every known slot in template. All slots are drawn in a
// fixed order, whether or not the template uses them, so the random stream
// depends only on how many times fill ran, not on which template came up.
func (l *Library) fill(template string, slots map[string][]string, order []string) string {
	pairs := make([]string, 0, len(order)*2)
	for _, slot := range order {
		pairs = append(pairs, slot, pick(l.r, slots[slot]))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func pick(r *rand.Rand, values []string) string {
	return values[r.Intn(len(values))]
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
