package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/username/shift-scheduler/internal/config"
	"github.com/username/shift-scheduler/internal/schedule"
	"github.com/username/shift-scheduler/pkg/dateutil"
	"go.uber.org/zap"
)

// Options control how a schedule is rendered
type Options struct {
	Format     string
	DateLayout string
	WorkMarker string
	Summary    bool
}

// OptionsFromConfig builds Options from the loaded configuration
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Format:     cfg.Output.Format,
		DateLayout: cfg.Schedule.DateLayout,
		WorkMarker: cfg.Schedule.WorkMarker,
		Summary:    cfg.Output.Summary,
	}
}

// Renderer writes schedules to an output stream, optionally mirrored to a file
type Renderer struct {
	fs     afero.Fs
	opts   Options
	logger *zap.Logger
}

// NewRenderer creates a new Renderer writing mirror files through fs
func NewRenderer(fs afero.Fs, opts Options, logger *zap.Logger) *Renderer {
	if opts.Format == "" {
		opts.Format = config.FormatDump
	}
	if opts.DateLayout == "" {
		opts.DateLayout = dateutil.LayoutDMY
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		fs:     fs,
		opts:   opts,
		logger: logger,
	}
}

// Write renders sched to w and, when mirrorPath is set, to that file as well
func (r *Renderer) Write(w io.Writer, sched *schedule.Schedule, mirrorPath string) error {
	if mirrorPath == "" {
		return r.Render(w, sched)
	}

	if err := r.fs.MkdirAll(filepath.Dir(mirrorPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output path: %w", err)
	}
	f, err := r.fs.OpenFile(mirrorPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	r.logger.Info("Output is mirrored to file", zap.String("file", mirrorPath))

	if err := r.Render(io.MultiWriter(w, f), sched); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}

// Render writes sched to w in the configured format
func (r *Renderer) Render(w io.Writer, sched *schedule.Schedule) error {
	var err error
	switch r.opts.Format {
	case config.FormatDump:
		err = r.writeDump(w, sched)
	case config.FormatLines:
		err = r.writeLines(w, sched)
	case config.FormatJSON:
		return r.writeJSON(w, sched)
	default:
		return fmt.Errorf("unknown output format: %s", r.opts.Format)
	}
	if err != nil {
		return err
	}

	if r.opts.Summary {
		return writeSummary(w, sched.Summarize())
	}
	return nil
}

func (r *Renderer) writeDump(w io.Writer, sched *schedule.Schedule) error {
	lines := sched.Strings(r.opts.DateLayout, r.opts.WorkMarker)

	if _, err := fmt.Fprint(w, "Array\n(\n"); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	for i, line := range lines {
		if _, err := fmt.Fprintf(w, "    [%d] => %s\n", i, line); err != nil {
			return fmt.Errorf("failed to write schedule: %w", err)
		}
	}
	if _, err := fmt.Fprint(w, ")\n"); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	return nil
}

func (r *Renderer) writeLines(w io.Writer, sched *schedule.Schedule) error {
	for _, line := range sched.Strings(r.opts.DateLayout, r.opts.WorkMarker) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write schedule: %w", err)
		}
	}
	return nil
}

type jsonEntry struct {
	Date string `json:"date"`
	Work bool   `json:"work"`
}

type jsonMonth struct {
	Year     int `json:"year"`
	Month    int `json:"month"`
	WorkDays int `json:"work_days"`
	OffDays  int `json:"off_days"`
}

type jsonSchedule struct {
	Start      string      `json:"start"`
	End        string      `json:"end"`
	NumberDays int         `json:"number_days"`
	Entries    []jsonEntry `json:"entries"`
	Summary    []jsonMonth `json:"summary,omitempty"`
}

func (r *Renderer) writeJSON(w io.Writer, sched *schedule.Schedule) error {
	out := jsonSchedule{
		Start:      sched.Window.Start.Format(r.opts.DateLayout),
		End:        sched.Window.End.Format(r.opts.DateLayout),
		NumberDays: sched.Window.NumberDays,
		Entries:    make([]jsonEntry, len(sched.Entries)),
	}
	for i, e := range sched.Entries {
		out.Entries[i] = jsonEntry{Date: e.Date.Format(r.opts.DateLayout), Work: e.IsWork()}
	}
	if r.opts.Summary {
		for _, m := range sched.Summarize() {
			out.Summary = append(out.Summary, jsonMonth{
				Year:     m.Year,
				Month:    int(m.Month),
				WorkDays: m.WorkDays,
				OffDays:  m.OffDays,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}
	return nil
}

func writeSummary(w io.Writer, months []schedule.MonthSummary) error {
	rows := []string{
		"",
		"Month    | Work | Off | Days",
		"---------+------+-----+-----",
	}
	for _, m := range months {
		rows = append(rows, fmt.Sprintf("%04d-%02d  | %4d | %3d | %4d",
			m.Year, int(m.Month), m.WorkDays, m.OffDays, m.Days()))
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}
