package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrescamacho/factoryplanner-go/internal/adapters/persistence"
	"github.com/andrescamacho/factoryplanner-go/internal/application/planner"
	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/config"
	"github.com/andrescamacho/factoryplanner-go/internal/infrastructure/database"
)

// session wires config, database and service for one command invocation.
type session struct {
	cfg     *config.Config
	service *planner.Service
	cleanup func()
}

// openSession builds the service and loads the working snapshot if it
// exists. A missing snapshot means a fresh plan, not an error.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := persistence.NewGormSnapshotRepository(db)
	service := planner.NewService(repo, nil)

	if err := service.LoadSnapshot(ctx, snapshotName); err != nil {
		if !isNotFound(err) {
			database.Close(db)
			return nil, fmt.Errorf("failed to load snapshot %q: %w", snapshotName, err)
		}
	}

	return &session{
		cfg:     cfg,
		service: service,
		cleanup: func() { database.Close(db) },
	}, nil
}

// commit writes the working snapshot back. Mutating commands call this as
// their last step.
func (s *session) commit(ctx context.Context) error {
	if _, err := s.service.SaveSnapshot(ctx, snapshotName, s.cfg.Planner.GameVersion); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", snapshotName, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "snapshot not found")
}

// parseFlows turns repeated "ITEM=RATE" flag values into flow specs.
func parseFlows(values []string) ([]planner.FlowSpec, error) {
	flows := make([]planner.FlowSpec, 0, len(values))
	for _, value := range values {
		parts := strings.SplitN(value, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid flow %q: want ITEM=RATE", value)
		}
		var rate float64
		if _, err := fmt.Sscanf(parts[1], "%g", &rate); err != nil {
			return nil, fmt.Errorf("invalid rate in flow %q: %w", value, err)
		}
		flows = append(flows, planner.FlowSpec{Item: strings.ToUpper(parts[0]), RatePerMin: rate})
	}
	return flows, nil
}
