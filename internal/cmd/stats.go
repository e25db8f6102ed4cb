package cmd

import (
	"github.com/spf13/cobra"

	"github.com/workseedhq/workseed/internal/config"
	"github.com/workseedhq/workseed/internal/database"
	"github.com/workseedhq/workseed/internal/repository"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show row counts for a generated database",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := database.Connect(cfg); err != nil {
		return err
	}

	reader := repository.NewDatasetReader(database.GetDB())
	counts, err := reader.TableCounts()
	if err != nil {
		return err
	}

	printSummary(counts)
	return nil
}
