package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/shift-scheduler/pkg/dateutil"
)

const envPrefix = "SHIFT_SCHEDULER"

// Output formats understood by the renderer
const (
	FormatDump  = "dump"
	FormatLines = "lines"
	FormatJSON  = "json"
)

// Config represents application configuration
type Config struct {
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

// ScheduleConfig represents schedule generation defaults
type ScheduleConfig struct {
	Period     int    `mapstructure:"period"`      // Months to generate when --period is not given
	WorkMarker string `mapstructure:"work_marker"` // Appended to work-day dates
	DateLayout string `mapstructure:"date_layout"` // Go time layout for entries
}

// OutputConfig represents presentation settings
type OutputConfig struct {
	Format  string `mapstructure:"format"` // "dump", "lines" or "json"
	File    string `mapstructure:"file"`   // Mirror output to this file (empty to disable)
	Summary bool   `mapstructure:"summary"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns configuration with every default applied
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			Period:     1,
			WorkMarker: "+",
			DateLayout: dateutil.LayoutDMY,
		},
		Output: OutputConfig{
			Format: FormatDump,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("schedule.period", d.Schedule.Period)
	v.SetDefault("schedule.work_marker", d.Schedule.WorkMarker)
	v.SetDefault("schedule.date_layout", d.Schedule.DateLayout)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.file", d.Output.File)
	v.SetDefault("output.summary", d.Output.Summary)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Load loads configuration from file.
// An empty configPath searches the default locations; a missing file there is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.shift-scheduler")
		v.AddConfigPath("/etc/shift-scheduler")
	}

	// Read environment variables, e.g. SHIFT_SCHEDULER_OUTPUT_FORMAT
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.ExpandEnvVars()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Schedule.Period < 0 {
		return fmt.Errorf("schedule.period must not be negative")
	}
	if c.Schedule.WorkMarker == "" {
		return fmt.Errorf("schedule.work_marker is required")
	}
	if c.Schedule.DateLayout == "" {
		return fmt.Errorf("schedule.date_layout is required")
	}

	switch c.Output.Format {
	case FormatDump, FormatLines, FormatJSON:
	default:
		return fmt.Errorf("output.format must be '%s', '%s' or '%s', got '%s'",
			FormatDump, FormatLines, FormatJSON, c.Output.Format)
	}

	return nil
}

// ExpandEnvVars expands environment variables in path settings
func (c *Config) ExpandEnvVars() {
	c.Output.File = os.ExpandEnv(c.Output.File)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
