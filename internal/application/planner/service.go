package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/engine"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/extraction"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/factory"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/logistics"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/power"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/save"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
	"github.com/andrescamacho/factoryplanner-go/pkg/utils"
)

// Service is the application facade over one engine. The engine itself is
// synchronous; this is the single serialization point around it, so adapters
// can call in from anywhere.
type Service struct {
	mu        sync.RWMutex
	eng       *engine.Engine
	snapshots SnapshotRepository
	clock     shared.Clock
}

// NewService creates a service over an empty engine. A nil clock falls back
// to system time.
func NewService(snapshots SnapshotRepository, clock shared.Clock) *Service {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Service{
		eng:       engine.New(),
		snapshots: snapshots,
		clock:     clock,
	}
}

// CreateFactory registers a new empty factory.
func (s *Service) CreateFactory(name, description string) FactorySummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarizeFactory(s.eng.CreateFactory(name, description))
}

// RemoveFactory deletes a factory and every logistics line touching it.
func (s *Service) RemoveFactory(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(id)
	if !ok {
		return engine.NewErrUnknownFactory(id)
	}
	// A self-link lists the same flux on both sides.
	removed := make(map[string]struct{})
	for _, fluxID := range append(f.IncomingFluxes(), f.OutgoingFluxes()...) {
		if _, done := removed[fluxID]; done {
			continue
		}
		if err := s.eng.RemoveLogisticsLine(fluxID); err != nil {
			return err
		}
		removed[fluxID] = struct{}{}
	}
	return s.eng.RemoveFactory(id)
}

// ListFactories returns every factory in creation order.
func (s *Service) ListFactories() []FactorySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	factories := s.eng.Factories()
	result := make([]FactorySummary, 0, len(factories))
	for _, f := range factories {
		result = append(result, summarizeFactory(f))
	}
	return result
}

// AddRecipeLine adds a recipe production line to a factory and returns the
// minted line id.
func (s *Service) AddRecipeLine(factoryID int, spec RecipeLineSpec) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return "", engine.NewErrUnknownFactory(factoryID)
	}
	line, err := buildRecipeLine(utils.GenerateEntityID("line"), spec)
	if err != nil {
		return "", err
	}
	if err := f.AddProductionLine(line); err != nil {
		return "", err
	}
	return line.ID(), nil
}

// AddBlueprintLine adds a blueprint production line composed of the given
// recipe lines and returns the minted line id.
func (s *Service) AddBlueprintLine(factoryID int, name string, specs []RecipeLineSpec) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return "", engine.NewErrUnknownFactory(factoryID)
	}
	lines := make([]*production.RecipeLine, 0, len(specs))
	for _, spec := range specs {
		line, err := buildRecipeLine(utils.GenerateEntityID("line"), spec)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	blueprint, err := production.NewBlueprintLine(utils.GenerateEntityID("line"), name, lines)
	if err != nil {
		return "", err
	}
	if err := f.AddProductionLine(blueprint); err != nil {
		return "", err
	}
	return blueprint.ID(), nil
}

// RemoveProductionLine removes a production line from a factory.
func (s *Service) RemoveProductionLine(factoryID int, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return engine.NewErrUnknownFactory(factoryID)
	}
	return f.RemoveProductionLine(lineID)
}

// AddExtractor adds a standalone extractor to a factory. Purity is empty for
// extractor types that do not take one.
func (s *Service) AddExtractor(factoryID int, extractorType, item, purity string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return "", engine.NewErrUnknownFactory(factoryID)
	}
	extractor, err := extraction.NewExtractor(utils.GenerateEntityID("raw"),
		catalog.ExtractorType(extractorType), catalog.Item(item), catalog.Purity(purity))
	if err != nil {
		return "", err
	}
	if err := f.AddRawInput(extractor); err != nil {
		return "", err
	}
	return extractor.ID(), nil
}

// AddResourceWell adds a pressurized well with one satellite per purity.
func (s *Service) AddResourceWell(factoryID int, item string, clock float64, purities []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return "", engine.NewErrUnknownFactory(factoryID)
	}
	converted := make([]catalog.Purity, 0, len(purities))
	for _, purity := range purities {
		converted = append(converted, catalog.Purity(purity))
	}
	well, err := extraction.NewResourceWell(utils.GenerateEntityID("raw"), catalog.Item(item), clock, converted)
	if err != nil {
		return "", err
	}
	if err := f.AddRawInput(well); err != nil {
		return "", err
	}
	return well.ID(), nil
}

// RemoveRawInput removes an extractor or well from a factory.
func (s *Service) RemoveRawInput(factoryID int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return engine.NewErrUnknownFactory(factoryID)
	}
	return f.RemoveRawInput(id)
}

// AddGenerator adds a generator bank burning the given fuel. Fuel is empty
// for generator classes that take none.
func (s *Service) AddGenerator(factoryID int, generatorType, fuel string, groups []GeneratorGroupSpec) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return "", engine.NewErrUnknownFactory(factoryID)
	}

	var generator *power.PowerGenerator
	var err error
	if fuel == "" && catalog.GeneratorType(generatorType) == catalog.GeneratorGeothermal {
		generator = power.NewGeothermalGenerator(utils.GenerateEntityID("gen"))
	} else {
		generator, err = power.NewPowerGenerator(utils.GenerateEntityID("gen"),
			catalog.GeneratorType(generatorType), catalog.Item(fuel))
		if err != nil {
			return "", err
		}
	}
	for _, group := range groups {
		if err := generator.AddGroup(group.Count, group.Clock); err != nil {
			return "", err
		}
	}
	if err := f.AddPowerGenerator(generator); err != nil {
		return "", err
	}
	return generator.ID(), nil
}

// RemoveGenerator removes a generator bank from a factory.
func (s *Service) RemoveGenerator(factoryID int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return engine.NewErrUnknownFactory(factoryID)
	}
	return f.RemovePowerGenerator(id)
}

// Connect creates a logistics line between two factories over the described
// carrier.
func (s *Service) Connect(from, to int, spec TransportSpec) (FluxSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	transport, err := buildTransport(spec)
	if err != nil {
		return FluxSummary{}, err
	}
	flux, err := s.eng.ConnectFactories(from, to, transport, spec.Details)
	if err != nil {
		return FluxSummary{}, err
	}
	return summarizeFlux(flux), nil
}

// RemoveLogisticsLine deletes a logistics line and detaches both endpoints.
func (s *Service) RemoveLogisticsLine(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.RemoveLogisticsLine(id)
}

// ListLogistics returns every logistics line in creation order.
func (s *Service) ListLogistics() []FluxSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fluxes := s.eng.Fluxes()
	result := make([]FluxSummary, 0, len(fluxes))
	for _, flux := range fluxes {
		result = append(result, summarizeFlux(flux))
	}
	return result
}

// FactoryBalance recomputes the whole network and returns one factory's net
// item rates sorted by item name.
func (s *Service) FactoryBalance(factoryID int) ([]ItemBalance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return nil, engine.NewErrUnknownFactory(factoryID)
	}
	s.eng.Update()
	return sortedBalance(f.Items()), nil
}

// GlobalBalance recomputes the whole network and returns engine-wide net
// item rates sorted by item name.
func (s *Service) GlobalBalance() []ItemBalance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedBalance(s.eng.Update())
}

// PowerStats returns per-factory and grid-wide power figures.
func (s *Service) PowerStats() PowerReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := s.eng.GlobalPowerStats()
	report := PowerReport{
		Rows:               make([]PowerRow, 0, len(stats.Factories)),
		TotalGenerationMW:  stats.TotalGenerationMW,
		TotalConsumptionMW: stats.TotalConsumptionMW,
		TotalBalanceMW:     stats.TotalBalanceMW,
	}
	for _, row := range stats.Factories {
		report.Rows = append(report.Rows, PowerRow{
			FactoryID:     row.FactoryID,
			FactoryName:   row.FactoryName,
			GenerationMW:  row.GenerationMW,
			ConsumptionMW: row.ConsumptionMW,
			BalanceMW:     row.BalanceMW,
		})
	}
	return report
}

// FuelConsumption reports one factory's generator fuel burn per fuel item,
// sorted by fuel name. Fuel burn is reported here only; it never debits the
// item balance.
func (s *Service) FuelConsumption(factoryID int) ([]FuelBurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.eng.Factory(factoryID)
	if !ok {
		return nil, engine.NewErrUnknownFactory(factoryID)
	}
	totals := make(map[string]float64)
	for _, generator := range f.PowerGenerators() {
		fuel, ok := generator.Fuel()
		if !ok {
			continue
		}
		totals[string(fuel)] += generator.TotalFuelConsumption()
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]FuelBurn, 0, len(names))
	for _, name := range names {
		result = append(result, FuelBurn{Fuel: name, RatePerMin: totals[name]})
	}
	return result, nil
}

// SaveSnapshot captures the engine under the given name and stores it.
func (s *Service) SaveSnapshot(ctx context.Context, name, gameVersion string) (SnapshotSummary, error) {
	s.mu.RLock()
	file := save.Capture(s.eng, gameVersion, s.clock)
	s.mu.RUnlock()

	payload, err := json.Marshal(file)
	if err != nil {
		return SnapshotSummary{}, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	record := &SnapshotRecord{
		Name:         name,
		Version:      file.Version,
		GameVersion:  file.GameVersion,
		CreatedAt:    file.CreatedAt,
		LastModified: file.LastModified,
		Payload:      payload,
	}
	if err := s.snapshots.Save(ctx, record); err != nil {
		return SnapshotSummary{}, err
	}
	return summarizeSnapshot(record), nil
}

// LoadSnapshot replaces the live engine with the named snapshot's contents.
// The engine is untouched when the load fails for any reason, version gate
// included.
func (s *Service) LoadSnapshot(ctx context.Context, name string) error {
	record, err := s.snapshots.FindByName(ctx, name)
	if err != nil {
		return err
	}
	var file save.SaveFile
	if err := json.Unmarshal(record.Payload, &file); err != nil {
		return fmt.Errorf("failed to decode snapshot %q: %w", name, err)
	}
	restored, err := save.Restore(&file)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.eng = restored
	s.mu.Unlock()
	return nil
}

// ListSnapshots returns stored save files, newest first.
func (s *Service) ListSnapshots(ctx context.Context) ([]SnapshotSummary, error) {
	records, err := s.snapshots.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]SnapshotSummary, 0, len(records))
	for _, record := range records {
		result = append(result, summarizeSnapshot(record))
	}
	return result, nil
}

// DeleteSnapshot removes a stored save file.
func (s *Service) DeleteSnapshot(ctx context.Context, name string) error {
	return s.snapshots.Delete(ctx, name)
}

func buildRecipeLine(id string, spec RecipeLineSpec) (*production.RecipeLine, error) {
	line, err := production.NewRecipeLine(id, spec.Name, catalog.Recipe(spec.Recipe))
	if err != nil {
		return nil, err
	}
	for _, group := range spec.Groups {
		if err := line.AddMachineGroup(group.Count, group.Clock, group.Augments); err != nil {
			return nil, err
		}
	}
	return line, nil
}

func buildTransport(spec TransportSpec) (logistics.Transport, error) {
	variant := logistics.TransportVariant(spec.Variant)
	id := utils.GenerateTransportID(spec.Variant)

	switch variant {
	case logistics.VariantBus:
		return logistics.NewBusTransport(id, convertFlows(spec.Conveyors), convertFlows(spec.Pipelines)), nil
	case logistics.VariantTrain:
		wagons := make([]logistics.Wagon, 0, len(spec.Wagons))
		for _, flows := range spec.Wagons {
			wagons = append(wagons, logistics.Wagon{Flows: convertFlows(flows)})
		}
		return logistics.NewTrainTransport(id, wagons), nil
	case logistics.VariantTruck:
		if spec.Flow == nil {
			return nil, fmt.Errorf("truck transport requires a flow")
		}
		return logistics.NewTruckTransport(id, convertFlow(*spec.Flow)), nil
	case logistics.VariantDrone:
		if spec.Flow == nil {
			return nil, fmt.Errorf("drone transport requires a flow")
		}
		return logistics.NewDroneTransport(id, convertFlow(*spec.Flow)), nil
	}
	return nil, fmt.Errorf("unknown transport variant %q", spec.Variant)
}

func convertFlows(flows []FlowSpec) []logistics.ItemFlow {
	result := make([]logistics.ItemFlow, 0, len(flows))
	for _, flow := range flows {
		result = append(result, convertFlow(flow))
	}
	return result
}

func convertFlow(flow FlowSpec) logistics.ItemFlow {
	return logistics.ItemFlow{Item: catalog.Item(flow.Item), RatePerMin: flow.RatePerMin}
}

func summarizeFactory(f *factory.Factory) FactorySummary {
	return FactorySummary{
		ID:              f.ID(),
		Name:            f.Name(),
		Description:     f.Description(),
		ProductionLines: len(f.ProductionLines()),
		RawInputs:       len(f.RawInputs()),
		Generators:      len(f.PowerGenerators()),
		Incoming:        f.IncomingFluxes(),
		Outgoing:        f.OutgoingFluxes(),
	}
}

func summarizeFlux(flux *logistics.LogisticsFlux) FluxSummary {
	summary := FluxSummary{
		ID:      flux.ID(),
		From:    flux.FromFactory(),
		To:      flux.ToFactory(),
		Variant: string(flux.Transport().Variant()),
		Details: flux.Details(),
	}
	for _, flow := range flux.Items() {
		summary.Items = append(summary.Items, FlowSpec{Item: string(flow.Item), RatePerMin: flow.RatePerMin})
	}
	return summary
}

func summarizeSnapshot(record *SnapshotRecord) SnapshotSummary {
	return SnapshotSummary{
		Name:         record.Name,
		Version:      record.Version,
		GameVersion:  record.GameVersion,
		CreatedAt:    record.CreatedAt.Format(time.RFC3339),
		LastModified: record.LastModified.Format(time.RFC3339),
	}
}

func sortedBalance(items map[catalog.Item]float64) []ItemBalance {
	names := make([]string, 0, len(items))
	for item := range items {
		names = append(names, string(item))
	}
	sort.Strings(names)

	result := make([]ItemBalance, 0, len(names))
	for _, name := range names {
		result = append(result, ItemBalance{Item: name, RatePerMin: items[catalog.Item(name)]})
	}
	return result
}
