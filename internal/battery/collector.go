package battery

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrUnavailable indicates no battery information could be read.
var ErrUnavailable = errors.New("unable to read battery information")

// Snapshot bundles everything collected for one report.
type Snapshot struct {
	Reading   *Reading
	Charger   Charger
	Power     PowerStatus
	UpdatedAt time.Time
}

// Collector gathers battery state from the system tools.
type Collector struct {
	run Runner
}

// NewCollector builds a collector. A nil runner uses os/exec.
func NewCollector(run Runner) *Collector {
	if run == nil {
		run = ExecRunner
	}

	return &Collector{run: run}
}

// Collect reads the battery, charger, and live power status. The ioreg
// reading is mandatory; charger and pmset details are best effort.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	ioregOut, err := c.run(ctx, "ioreg", ioregArgs...)
	if err != nil {
		slog.Debug("ioreg failed", "error", err)

		return nil, ErrUnavailable
	}

	snapshot := &Snapshot{
		Reading:   ParseIoreg(string(ioregOut)),
		UpdatedAt: time.Now(),
	}

	profilerOut, err := c.run(ctx, "system_profiler", systemProfilerArgs...)
	if err != nil {
		slog.Debug("system_profiler failed", "error", err)
	} else {
		snapshot.Charger = ParseCharger(string(profilerOut))
	}

	pmsetOut, err := c.run(ctx, "pmset", pmsetArgs...)
	if err != nil {
		slog.Debug("pmset failed", "error", err)
	} else {
		snapshot.Power = ParsePmset(string(pmsetOut))
	}

	return snapshot, nil
}

// ChargerName prefers the system_profiler charger name and falls back to
// the adapter details in the battery reading.
func (s *Snapshot) ChargerName() string {
	if s.Charger.Name != "" {
		return s.Charger.Name
	}

	return s.Reading.AdapterName
}

// ChargerWattage prefers the system_profiler wattage and falls back to the
// adapter watts in the battery reading.
func (s *Snapshot) ChargerWattage() int {
	if s.Charger.Wattage > 0 {
		return s.Charger.Wattage
	}

	return s.Reading.AdapterWatts
}
