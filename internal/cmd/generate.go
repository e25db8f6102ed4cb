package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/workseedhq/workseed/internal/config"
	"github.com/workseedhq/workseed/internal/content"
	"github.com/workseedhq/workseed/internal/database"
	"github.com/workseedhq/workseed/internal/logging"
	"github.com/workseedhq/workseed/internal/pipeline"
	"github.com/workseedhq/workseed/internal/repository"
	"github.com/workseedhq/workseed/internal/services"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a seeded workspace into the configured database",
	Long: `Generate builds the workspace in dependency order and writes it table by
table: the organization, then users, teams, memberships, projects,
sections, tags, custom fields, tasks and their activity.

With content.api_key set, task names, descriptions and comments are
enriched through the configured language model; otherwise everything
comes from built-in templates.`,
	RunE: runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.Int("users", 0, "number of users to generate")
	flags.Int("teams", 0, "number of teams to generate")
	flags.Int("projects", 0, "number of projects to generate")
	flags.Int("tasks-per-project", 0, "average task count per project")
	flags.Int64("seed", 0, "random seed (0 derives one from the clock)")
	flags.String("db-path", "", "SQLite database file")

	_ = viper.BindPFlag("volumes.users", flags.Lookup("users"))
	_ = viper.BindPFlag("volumes.teams", flags.Lookup("teams"))
	_ = viper.BindPFlag("volumes.projects", flags.Lookup("projects"))
	_ = viper.BindPFlag("volumes.tasks_per_project", flags.Lookup("tasks-per-project"))
	_ = viper.BindPFlag("seed", flags.Lookup("seed"))

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Several commands declare --db-path, so the binding happens at run
	// time where the executing command's flag wins.
	_ = viper.BindPFlag("database.path", cmd.Flags().Lookup("db-path"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)

	if err := database.Connect(cfg); err != nil {
		return err
	}
	if err := database.Migrate(); err != nil {
		return err
	}

	db := database.GetDB()
	if err := database.AddIndexes(db); err != nil {
		return err
	}

	// The enricher stays nil without an API key; the generators then fall
	// back to their templates.
	var enricher content.Enricher
	if cfg.Content.APIKey != "" {
		enricher = services.New(cfg.Content.APIKey, cfg.Content.BaseURL, cfg.Content.Model, cfg.Content.Timeout)
		logger.Info("content service enabled", "model", cfg.Content.Model)
	}

	runner := pipeline.New(cfg, repository.NewSink(db), repository.NewDatasetReader(db), enricher, logger)

	counts, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Generated workspace with seed %d\n\n", runner.Seed())
	printSummary(counts)
	return nil
}

// printSummary writes the per-table row counts as a small aligned report.
func printSummary(counts []repository.TableCount) {
	var total int64
	fmt.Printf("%-26s %10s\n", "table", "rows")
	fmt.Println(strings.Repeat("─", 37))
	for _, count := range counts {
		fmt.Printf("%-26s %10d\n", count.Table, count.Rows)
		total += count.Rows
	}
	fmt.Println(strings.Repeat("─", 37))
	fmt.Printf("%-26s %10d\n", "total", total)
}
