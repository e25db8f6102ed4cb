// Package pipeline chains the generators in dependency order and flushes
// each stage's batch to the storage sink. A stage only ever consumes what
// earlier stages produced, so a failed insert aborts the run before any
// dependent rows are drawn.
package pipeline

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/workseedhq/workseed/internal/config"
	"github.com/workseedhq/workseed/internal/content"
	"github.com/workseedhq/workseed/internal/errors"
	"github.com/workseedhq/workseed/internal/generators"
	"github.com/workseedhq/workseed/internal/models"
	"github.com/workseedhq/workseed/internal/repository"
)

// Runner owns one generation run: a seeded environment, the write sink and
// the reader the summary comes from.
type Runner struct {
	cfg    *config.Config
	sink   repository.Sink
	reader repository.DatasetReader
	env    *generators.Env
	seed   int64
	logger *slog.Logger
}

// New prepares a run. The effective seed is resolved here so it can be
// logged and reused; pass a nil enricher to generate from templates only.
func New(cfg *config.Config, sink repository.Sink, reader repository.DatasetReader, enricher content.Enricher, logger *slog.Logger) *Runner {
	seed := cfg.RandomSeed()
	return &Runner{
		cfg:    cfg,
		sink:   sink,
		reader: reader,
		env:    generators.NewEnv(seed, time.Now(), enricher, logger),
		seed:   seed,
		logger: logger,
	}
}

// Seed returns the seed the run draws from.
func (r *Runner) Seed() int64 {
	return r.seed
}

// Run executes every stage and returns the per-table row counts. The first
// failing insert aborts the run with a StageError naming the table.
func (r *Runner) Run(ctx context.Context) ([]repository.TableCount, error) {
	r.logger.Info("starting generation run",
		"seed", r.seed,
		"users", r.cfg.Volumes.Users,
		"teams", r.cfg.Volumes.Teams,
		"projects", r.cfg.Volumes.Projects,
		"tasks_per_project", r.cfg.Volumes.TasksPerProject,
	)

	org := generators.NewOrganizationGenerator(r.env).Generate()
	if err := r.flush(ctx, "organizations", []models.Organization{*org}); err != nil {
		return nil, err
	}

	users := generators.NewUserGenerator(r.env).Generate(org, r.cfg.Volumes.Users, r.cfg.SeedPassword)
	if err := r.flush(ctx, "users", users); err != nil {
		return nil, err
	}

	teamGen := generators.NewTeamGenerator(r.env)
	teams := teamGen.Generate(org, r.cfg.Volumes.Teams)
	if err := r.flush(ctx, "teams", teams); err != nil {
		return nil, err
	}

	memberships := teamGen.Memberships(teams, users)
	if err := r.flush(ctx, "team_memberships", memberships); err != nil {
		return nil, err
	}

	projects, sections := generators.NewProjectGenerator(r.env).Generate(teams, users, r.cfg.Volumes.Projects)
	if err := r.flush(ctx, "projects", projects); err != nil {
		return nil, err
	}
	if err := r.flush(ctx, "sections", sections); err != nil {
		return nil, err
	}

	tagGen := generators.NewTagGenerator(r.env)
	tags := tagGen.Generate(org)
	if err := r.flush(ctx, "tags", tags); err != nil {
		return nil, err
	}

	fieldGen := generators.NewCustomFieldGenerator(r.env)
	fields := fieldGen.Definitions(org)
	if err := r.flush(ctx, "custom_field_definitions", fields); err != nil {
		return nil, err
	}

	tasks, subtasks := generators.NewTaskGenerator(r.env).Generate(ctx, projects, sections, users, r.cfg.Volumes.TasksPerProject)
	if err := r.flush(ctx, "tasks", tasks); err != nil {
		return nil, err
	}
	if err := r.flush(ctx, "subtasks", subtasks); err != nil {
		return nil, err
	}

	taskTags := tagGen.Associations(tasks, tags, r.cfg.Ratios.Tag)
	if err := r.flush(ctx, "task_tags", taskTags); err != nil {
		return nil, err
	}

	values := fieldGen.Values(tasks, fields, r.cfg.Ratios.CustomField)
	if err := r.flush(ctx, "custom_field_values", values); err != nil {
		return nil, err
	}

	comments := generators.NewCommentGenerator(r.env).Generate(ctx, tasks, users, r.cfg.Ratios.Comment)
	if err := r.flush(ctx, "comments", comments); err != nil {
		return nil, err
	}

	attachments := generators.NewAttachmentGenerator(r.env).Generate(tasks, users, r.cfg.Ratios.Attachment)
	if err := r.flush(ctx, "attachments", attachments); err != nil {
		return nil, err
	}

	r.logger.Info("generation run complete", "seed", r.seed)
	return r.reader.TableCounts()
}

// flush writes one stage's batch. Stages that produced nothing are skipped
// so zero-volume runs stay valid.
func (r *Runner) flush(ctx context.Context, table string, records interface{}) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStageError(table, err)
	}

	rows := reflect.ValueOf(records).Len()
	if rows == 0 {
		r.logger.Debug("stage produced no rows", "table", table)
		return nil
	}

	if err := r.sink.InsertBatch(table, records); err != nil {
		return errors.NewStageError(table, err)
	}
	r.logger.Info("stage complete", "table", table, "rows", rows)
	return nil
}
