package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planner"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/engine"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/save"
)

// memorySnapshotRepository backs the planner service in scenarios; nothing
// here touches a real database.
type memorySnapshotRepository struct {
	records map[string]*planner.SnapshotRecord
}

func newMemorySnapshotRepository() *memorySnapshotRepository {
	return &memorySnapshotRepository{records: make(map[string]*planner.SnapshotRecord)}
}

func (r *memorySnapshotRepository) Save(_ context.Context, record *planner.SnapshotRecord) error {
	copied := *record
	r.records[record.Name] = &copied
	return nil
}

func (r *memorySnapshotRepository) FindByName(_ context.Context, name string) (*planner.SnapshotRecord, error) {
	record, ok := r.records[name]
	if !ok {
		return nil, fmt.Errorf("snapshot not found: %s", name)
	}
	return record, nil
}

func (r *memorySnapshotRepository) ListAll(_ context.Context) ([]*planner.SnapshotRecord, error) {
	result := make([]*planner.SnapshotRecord, 0, len(r.records))
	for _, record := range r.records {
		result = append(result, record)
	}
	return result, nil
}

func (r *memorySnapshotRepository) Delete(_ context.Context, name string) error {
	delete(r.records, name)
	return nil
}

type saveContext struct {
	file    *save.SaveFile
	loadErr error

	svc       *planner.Service
	factoryID int
}

func (sc *saveContext) reset() {
	sc.file = nil
	sc.loadErr = nil
	sc.svc = nil
	sc.factoryID = 0
}

func (sc *saveContext) aStoredSnapshotWithVersion(version string) error {
	sc.file = save.Capture(engine.New(), "", nil)
	sc.file.Version = version
	return nil
}

func (sc *saveContext) iLoadTheSnapshot() error {
	_, sc.loadErr = save.Restore(sc.file)
	return nil
}

func (sc *saveContext) theLoadShouldSucceed() error {
	if sc.loadErr != nil {
		return fmt.Errorf("load failed: %v", sc.loadErr)
	}
	return nil
}

func (sc *saveContext) theLoadShouldFailTooNew() error {
	var tooNew *save.ErrSnapshotTooNew
	if !errors.As(sc.loadErr, &tooNew) {
		return fmt.Errorf("expected a too-new version error, got %v", sc.loadErr)
	}
	return nil
}

func (sc *saveContext) theLoadShouldFailTooOld() error {
	var tooOld *save.ErrSnapshotTooOld
	if !errors.As(sc.loadErr, &tooOld) {
		return fmt.Errorf("expected a too-old version error, got %v", sc.loadErr)
	}
	return nil
}

func (sc *saveContext) aPlannerWithAFactoryNamed(name string) error {
	sc.svc = planner.NewService(newMemorySnapshotRepository(), nil)
	summary := sc.svc.CreateFactory(name, "")
	sc.factoryID = summary.ID
	return nil
}

func (sc *saveContext) iSaveThePlanAsAndLoadItBack(name string) error {
	ctx := context.Background()
	if _, err := sc.svc.SaveSnapshot(ctx, name, ""); err != nil {
		return err
	}
	// Mutate before loading so the load visibly restores the saved state
	sc.svc.CreateFactory("scratch", "")
	return sc.svc.LoadSnapshot(ctx, name)
}

func (sc *saveContext) thePlannerShouldHaveFactories(count int) error {
	actual := len(sc.svc.ListFactories())
	if actual != count {
		return fmt.Errorf("planner has %d factories, expected %d", actual, count)
	}
	return nil
}

// InitializeSaveScenario registers save-file versioning and round-trip step
// definitions.
func InitializeSaveScenario(scenario *godog.ScenarioContext) {
	sc := &saveContext{}

	scenario.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	scenario.Step(`^a stored snapshot with version "([^"]*)"$`, sc.aStoredSnapshotWithVersion)
	scenario.Step(`^I load the snapshot$`, sc.iLoadTheSnapshot)
	scenario.Step(`^the load should succeed$`, sc.theLoadShouldSucceed)
	scenario.Step(`^the load should fail because the snapshot is too new$`, sc.theLoadShouldFailTooNew)
	scenario.Step(`^the load should fail because the snapshot is too old$`, sc.theLoadShouldFailTooOld)

	scenario.Step(`^a planner with a factory named "([^"]*)"$`, sc.aPlannerWithAFactoryNamed)
	scenario.Step(`^I save the plan as "([^"]*)" and load it back$`, sc.iSaveThePlanAsAndLoadItBack)
	scenario.Step(`^the planner should have (\d+) factor(?:y|ies)$`, sc.thePlannerShouldHaveFactories)
}
