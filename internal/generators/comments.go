package generators

import (
	"context"
	"time"

	"github.com/workseedhq/workseed/internal/content"
	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/utils"
)

const (
	maxCommentsPerTask   = 4
	commentStepMaxHours  = 72
	commentClipSpanHours = 24
)

// CommentGenerator produces discussion threads on tasks.
type CommentGenerator struct {
	env *Env
}

func NewCommentGenerator(env *Env) *CommentGenerator {
	return &CommentGenerator{env: env}
}

// Generate threads 1..4 comments onto the configured share of tasks. Each
// thread starts at the task's creation and advances 1..72 hours per comment;
// a step that would land in the future is clipped to a recent instant that
// keeps the thread strictly ordered.
func (g *CommentGenerator) Generate(ctx context.Context, tasks []models.Task, users []models.User, ratio float64) []models.Comment {
	if len(tasks) == 0 || len(users) == 0 {
		return nil
	}

	r := g.env.Rand
	intents := content.Intents()
	var comments []models.Comment

	for _, task := range tasks {
		if r.Float64() > ratio {
			continue
		}

		count := 1 + r.Intn(maxCommentsPerTask)
		last := task.CreatedAt

		for i := 0; i < count; i++ {
			intent := intents[r.Intn(len(intents))]
			author := users[r.Intn(len(users))]

			stamp := last.Add(time.Duration(1+r.Intn(commentStepMaxHours)) * time.Hour)
			if stamp.After(g.env.Now) {
				stamp = g.env.Now.Add(-time.Duration(1+r.Intn(commentClipSpanHours)) * time.Hour)
				if !stamp.After(last) {
					// the thread caught up with now; bisect the gap left
					stamp = last.Add(g.env.Now.Sub(last) / 2)
					if !stamp.After(last) {
						break
					}
				}
			}
			last = stamp

			comments = append(comments, models.Comment{
				ID:        utils.NewID(r),
				TaskID:    task.ID,
				AuthorID:  author.ID,
				Content:   g.env.Content.Comment(ctx, task.Name, intent),
				CreatedAt: stamp,
			})
		}
	}
	return comments
}
