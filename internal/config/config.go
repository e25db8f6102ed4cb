package config

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/workseedhq/workseed/internal/errors"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds every knob of a generation run. All knobs are independent
// and defaulted; see SetDefaults.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Volumes  VolumesConfig  `mapstructure:"volumes"`
	Ratios   RatiosConfig   `mapstructure:"ratios"`
	Content  ContentConfig  `mapstructure:"content"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`

	// Seed drives every random draw of a run, identifiers included.
	// Zero means derive one from the current time.
	Seed int64 `mapstructure:"seed"`

	// SeedPassword is bcrypt-hashed once per run and shared by all
	// generated users so demo logins work. Empty leaves the hash column
	// empty.
	SeedPassword string `mapstructure:"seed_password"`
}

// DatabaseConfig selects the storage destination.
type DatabaseConfig struct {
	// Driver is one of sqlite, mysql, postgres.
	Driver string `mapstructure:"driver"`
	// Path is the SQLite file location (sqlite driver only).
	Path string `mapstructure:"path"`
	// DSN is the connection string for mysql/postgres.
	DSN string `mapstructure:"dsn"`
}

// VolumesConfig sets how many of each root entity to generate.
type VolumesConfig struct {
	Users           int `mapstructure:"users"`
	Teams           int `mapstructure:"teams"`
	Projects        int `mapstructure:"projects"`
	TasksPerProject int `mapstructure:"tasks_per_project"`
}

// RatiosConfig sets what fraction of eligible tasks receive derived rows.
type RatiosConfig struct {
	Attachment  float64 `mapstructure:"attachment"`
	Comment     float64 `mapstructure:"comment"`
	Tag         float64 `mapstructure:"tag"`
	CustomField float64 `mapstructure:"custom_field"`
}

// ContentConfig configures the optional enrichment service. An empty APIKey
// disables it and every text comes from templates.
type ContentConfig struct {
	APIKey string `mapstructure:"api_key"`
	// BaseURL overrides the API endpoint for OpenAI-compatible servers.
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ServerConfig configures the read-only inspector API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   "output/workseed.db",
			DSN:    "",
		},
		Volumes: VolumesConfig{
			Users:           50,
			Teams:           5,
			Projects:        10,
			TasksPerProject: 15,
		},
		Ratios: RatiosConfig{
			Attachment:  0.2,
			Comment:     0.4,
			Tag:         0.5,
			CustomField: 0.6,
		},
		Content: ContentConfig{
			APIKey:  "",
			BaseURL: "",
			Model:   "gpt-4o",
			Timeout: 10 * time.Second,
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Seed:         0,
		SeedPassword: "workseed",
	}
}

// SetDefaults registers every default with viper so values resolve even
// without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("database.driver", defaults.Database.Driver)
	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("database.dsn", defaults.Database.DSN)

	viper.SetDefault("volumes.users", defaults.Volumes.Users)
	viper.SetDefault("volumes.teams", defaults.Volumes.Teams)
	viper.SetDefault("volumes.projects", defaults.Volumes.Projects)
	viper.SetDefault("volumes.tasks_per_project", defaults.Volumes.TasksPerProject)

	viper.SetDefault("ratios.attachment", defaults.Ratios.Attachment)
	viper.SetDefault("ratios.comment", defaults.Ratios.Comment)
	viper.SetDefault("ratios.tag", defaults.Ratios.Tag)
	viper.SetDefault("ratios.custom_field", defaults.Ratios.CustomField)

	viper.SetDefault("content.api_key", defaults.Content.APIKey)
	viper.SetDefault("content.base_url", defaults.Content.BaseURL)
	viper.SetDefault("content.model", defaults.Content.Model)
	viper.SetDefault("content.timeout", defaults.Content.Timeout)

	viper.SetDefault("server.addr", defaults.Server.Addr)
	viper.SetDefault("server.mode", defaults.Server.Mode)

	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("log.format", defaults.Log.Format)

	viper.SetDefault("seed", defaults.Seed)
	viper.SetDefault("seed_password", defaults.SeedPassword)
}

// Load reads the configuration from viper and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every knob; the first violation is returned as a
// ConfigError so a run aborts before any write.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.NewConfigError("database.path", "required for the sqlite driver")
		}
	case DriverMySQL, DriverPostgres:
		if c.Database.DSN == "" {
			return errors.NewConfigError("database.dsn", "required for the "+c.Database.Driver+" driver")
		}
	default:
		return errors.NewConfigError("database.driver", "must be sqlite, mysql or postgres")
	}

	counts := []struct {
		knob  string
		value int
	}{
		{"volumes.users", c.Volumes.Users},
		{"volumes.teams", c.Volumes.Teams},
		{"volumes.projects", c.Volumes.Projects},
		{"volumes.tasks_per_project", c.Volumes.TasksPerProject},
	}
	for _, count := range counts {
		if count.value < 0 {
			return errors.NewConfigError(count.knob, "must not be negative")
		}
	}

	ratios := []struct {
		knob  string
		value float64
	}{
		{"ratios.attachment", c.Ratios.Attachment},
		{"ratios.comment", c.Ratios.Comment},
		{"ratios.tag", c.Ratios.Tag},
		{"ratios.custom_field", c.Ratios.CustomField},
	}
	for _, ratio := range ratios {
		if ratio.value < 0 || ratio.value > 1 {
			return errors.NewConfigError(ratio.knob, "must be within [0, 1]")
		}
	}

	if c.Content.Timeout <= 0 {
		return errors.NewConfigError("content.timeout", "must be positive")
	}

	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return errors.NewConfigError("server.mode", "must be debug, release or test")
	}

	return nil
}

// RandomSeed resolves the effective seed for a run.
func (c *Config) RandomSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
