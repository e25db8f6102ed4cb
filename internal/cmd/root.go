package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/workseedhq/workseed/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "workseed",
	Short: "Deterministic seed data for project management demos",
	Long: `Workseed fills a relational database with a coherent project management
workspace: an organization with its teams and users, projects with their
section flows, and tasks carrying subtasks, comments, tags, custom fields
and attachments.

Every run is driven by a single random seed. The same seed and volumes
reproduce the same workspace.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./workseed.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("workseed")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("WORKSEED")
	// Replace dots with underscores for nested keys in env vars
	// e.g., WORKSEED_DATABASE_PATH for database.path
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
