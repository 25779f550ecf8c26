package scheduler

import (
	"context"
	"time"

	"github.com/fintamago/fintamago/internal/logging"
	"github.com/fintamago/fintamago/pkg/repositories/ledger"
	petService "github.com/fintamago/fintamago/pkg/services/pet"
)

// EngineMaintenance wires the engine's background cadences onto a scheduler:
// the passive mood-decay sweep and, when Elasticsearch is configured, the
// daily ledger archive.
type EngineMaintenance struct {
	scheduler *Scheduler
	pets      *petService.Service
	archiver  *ledger.Archiver // nil disables archiving
	interval  time.Duration
}

// NewEngineMaintenance creates the maintenance runner. decayInterval is how
// often the sweep runs; archiver may be nil.
func NewEngineMaintenance(pets *petService.Service, archiver *ledger.Archiver, decayInterval time.Duration, logger *logging.Logger) *EngineMaintenance {
	if decayInterval <= 0 {
		decayInterval = time.Hour
	}
	return &EngineMaintenance{
		scheduler: NewScheduler(logger),
		pets:      pets,
		archiver:  archiver,
		interval:  decayInterval,
	}
}

// Start registers and starts the maintenance tasks
func (m *EngineMaintenance) Start(ctx context.Context) {
	m.scheduler.AddTask("mood_decay", m.interval, m.pets.DecaySweep)

	if m.archiver != nil {
		m.scheduler.AddTask("ledger_archive", 24*time.Hour, m.archiver.ArchiveRecent)
	}

	m.scheduler.Start(ctx)
}

// Stop stops the maintenance tasks and waits for them to finish
func (m *EngineMaintenance) Stop() {
	m.scheduler.Stop()
}
