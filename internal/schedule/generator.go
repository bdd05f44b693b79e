package schedule

import (
	"fmt"

	"go.uber.org/zap"
)

// Generator computes schedules for requests against an injected clock
type Generator struct {
	clock  Clock
	logger *zap.Logger
}

// NewGenerator creates a new Generator. A nil clock means the system clock.
func NewGenerator(clock Clock, logger *zap.Logger) *Generator {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		clock:  clock,
		logger: logger,
	}
}

// Generate resolves the window for req and walks it.
// No schedule is returned when the request is rejected.
func (g *Generator) Generate(req Request) (*Schedule, error) {
	window, err := ComputeWindow(req, g.clock)
	if err != nil {
		g.logger.Warn("Rejected schedule request", zap.Error(err))
		return nil, fmt.Errorf("failed to compute window: %w", err)
	}

	g.logger.Debug("Window computed",
		zap.Time("start", window.Start),
		zap.Time("end", window.End),
		zap.Int("number_days", window.NumberDays))

	sched := Walk(window)

	g.logger.Info("Schedule generated",
		zap.String("start", window.Start.Format("2006-01-02")),
		zap.String("end", window.End.Format("2006-01-02")),
		zap.Int("entries", len(sched.Entries)),
		zap.Int("work_days", sched.WorkDays()))

	return sched, nil
}

// GenerateRaw parses textual inputs and generates the schedule
func (g *Generator) GenerateRaw(month, year, period string) (*Schedule, error) {
	req, err := ParseRequest(month, year, period)
	if err != nil {
		return nil, err
	}
	return g.Generate(req)
}
