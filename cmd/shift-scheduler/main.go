package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/username/shift-scheduler/internal/config"
	"github.com/username/shift-scheduler/internal/render"
	"github.com/username/shift-scheduler/internal/schedule"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// app carries the state shared by the commands of one invocation
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger

	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
	clock  schedule.Clock
}

func main() {
	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
		clock:  schedule.SystemClock{},
	}

	os.Exit(a.run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code
func (a *app) run(args []string) int {
	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	err := rootCmd.Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	var (
		month   string
		year    string
		period  string
		format  string
		output  string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "shift-scheduler",
		Short: "Work/rest schedule generator",
		Long: "Generate a day-by-day schedule for the rotation: weekend days off, one work day, two days off.\n" +
			"Work days are marked with a trailing '+'.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if cfg.Log.File != "" {
				a.logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
			} else {
				a.logger, err = initLogger(cfg.Log.Level)
				if err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags override config
			if !cmd.Flags().Changed("period") {
				period = fmt.Sprint(a.cfg.Schedule.Period)
			}
			if cmd.Flags().Changed("format") {
				a.cfg.Output.Format = format
			}
			if cmd.Flags().Changed("output") {
				a.cfg.Output.File = output
			}
			if cmd.Flags().Changed("summary") {
				a.cfg.Output.Summary = summary
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			generator := schedule.NewGenerator(a.clock, a.logger)
			sched, err := generator.GenerateRaw(month, year, period)
			if err != nil {
				return err
			}

			renderer := render.NewRenderer(a.fs, render.OptionsFromConfig(a.cfg), a.logger)
			return renderer.Write(cmd.OutOrStdout(), sched, a.cfg.Output.File)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (default: search ./config.yaml)")

	cmd.Flags().StringVarP(&month, "month", "m", "", "Starting month 1-12 (default: current month)")
	cmd.Flags().StringVarP(&year, "year", "y", "", "Starting year (default: current year)")
	cmd.Flags().StringVarP(&period, "period", "p", "1", "Number of months to generate")
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatDump, "Output format: dump, lines or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Mirror output to file (empty to disable)")
	cmd.Flags().BoolVar(&summary, "summary", false, "Append per-month work/off totals")

	return cmd
}

func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	return zapLevel
}
