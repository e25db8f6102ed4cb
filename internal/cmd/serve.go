package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/workseedhq/workseed/internal/config"
	"github.com/workseedhq/workseed/internal/database"
	"github.com/workseedhq/workseed/internal/handlers"
	"github.com/workseedhq/workseed/internal/repository"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only inspector API over a generated database",
	Long: `Serve exposes the generated workspace through a small HTTP API so the
data can be browsed without a SQL client: the organization, the user
roster, projects with their sections, and filterable task lists.

The API never writes; regenerate the database to change it.`,
	RunE: runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.String("addr", "", "listen address")
	flags.String("db-path", "", "SQLite database file")

	_ = viper.BindPFlag("server.addr", flags.Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	_ = viper.BindPFlag("database.path", cmd.Flags().Lookup("db-path"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := database.Connect(cfg); err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	handler := handlers.NewDatasetHandler(repository.NewDatasetReader(database.GetDB()))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Workseed inspector is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.GET("/summary", handler.Summary)
		api.GET("/organization", handler.GetOrganization)
		api.GET("/users", handler.ListUsers)
		api.GET("/projects", handler.ListProjects)
		api.GET("/tasks", handler.ListTasks)
		api.GET("/tasks/:id", handler.GetTask)
	}

	return r.Run(cfg.Server.Addr)
}
