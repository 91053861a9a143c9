package save

import (
	"strconv"
	"time"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/engine"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/extraction"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/factory"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/logistics"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/power"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/shared"
)

// SaveFile is a persisted engine snapshot plus its format metadata. The
// snapshot is created on save and consumed on load; the engine keeps no
// state of its own between the two.
type SaveFile struct {
	Version      string         `json:"version"`
	CreatedAt    time.Time      `json:"createdAt"`
	LastModified time.Time      `json:"lastModified"`
	GameVersion  string         `json:"gameVersion,omitempty"`
	Engine       EngineSnapshot `json:"engine"`
}

// EngineSnapshot is the persisted engine shape: factories and the canonical
// flux registry, both keyed by id.
type EngineSnapshot struct {
	Factories      map[string]FactorySnapshot `json:"factories"`
	LogisticsLines map[string]FluxSnapshot    `json:"logisticsLines"`
}

// FactorySnapshot persists one facility with its owned entities in
// declaration order and its flux references in attach order.
type FactorySnapshot struct {
	ID              int                 `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	ProductionLines []LineSnapshot      `json:"productionLines"`
	RawInputs       []RawInputSnapshot  `json:"rawInputs"`
	Generators      []GeneratorSnapshot `json:"powerGenerators"`
	Incoming        []string            `json:"logisticsInput"`
	Outgoing        []string            `json:"logisticsOutput"`
}

// Line kinds and raw-input kinds persisted in snapshots.
const (
	LineKindRecipe    = "RECIPE"
	LineKindBlueprint = "BLUEPRINT"

	RawInputKindExtractor = "EXTRACTOR"
	RawInputKindWell      = "RESOURCE_WELL"
)

// LineSnapshot persists a production line of either kind. Recipe lines
// carry Recipe and Groups; blueprint lines carry nested recipe Lines.
type LineSnapshot struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Kind   string          `json:"kind"`
	Recipe string          `json:"recipe,omitempty"`
	Groups []GroupSnapshot `json:"machineGroups,omitempty"`
	Lines  []LineSnapshot  `json:"recipeLines,omitempty"`
}

// GroupSnapshot persists one machine group configuration.
type GroupSnapshot struct {
	Count    int     `json:"count"`
	Clock    float64 `json:"clockSpeed"`
	Augments int     `json:"augmentPerMachine"`
}

// RawInputSnapshot persists either a standalone extractor or a resource
// well (pressurizer clock plus satellite purities).
type RawInputSnapshot struct {
	ID            string   `json:"id"`
	Kind          string   `json:"kind"`
	Item          string   `json:"item"`
	ExtractorType string   `json:"extractorType,omitempty"`
	Purity        string   `json:"purity,omitempty"`
	Clock         float64  `json:"clockSpeed,omitempty"`
	Satellites    []string `json:"extractors,omitempty"`
}

// GeneratorSnapshot persists one generator bank.
type GeneratorSnapshot struct {
	ID     string             `json:"id"`
	Type   string             `json:"generatorType"`
	Fuel   string             `json:"fuelItem,omitempty"`
	Groups []GenGroupSnapshot `json:"groups"`
}

// GenGroupSnapshot persists one generator group configuration.
type GenGroupSnapshot struct {
	Count int     `json:"count"`
	Clock float64 `json:"clockSpeed"`
}

// FlowSnapshot persists one carried item flow.
type FlowSnapshot struct {
	Item       string  `json:"item"`
	RatePerMin float64 `json:"ratePerMinute"`
}

// FluxSnapshot persists one logistics flux with its carrier payload. The
// populated payload fields depend on the variant: buses carry conveyor and
// pipeline lists, trains carry wagons, trucks and drones one flow.
type FluxSnapshot struct {
	ID        string           `json:"id"`
	From      int              `json:"fromFactory"`
	To        int              `json:"toFactory"`
	Variant   string           `json:"transportVariant"`
	Details   string           `json:"detailsText,omitempty"`
	Conveyors []FlowSnapshot   `json:"conveyors,omitempty"`
	Pipelines []FlowSnapshot   `json:"pipelines,omitempty"`
	Wagons    [][]FlowSnapshot `json:"wagons,omitempty"`
	Flow      *FlowSnapshot    `json:"flow,omitempty"`
}

// Capture snapshots the whole engine under the current save version.
func Capture(eng *engine.Engine, gameVersion string, clock shared.Clock) *SaveFile {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	now := clock.Now()

	snapshot := EngineSnapshot{
		Factories:      make(map[string]FactorySnapshot),
		LogisticsLines: make(map[string]FluxSnapshot),
	}
	for _, f := range eng.Factories() {
		snapshot.Factories[strconv.Itoa(f.ID())] = captureFactory(f)
	}
	for _, flux := range eng.Fluxes() {
		snapshot.LogisticsLines[flux.ID()] = captureFlux(flux)
	}

	return &SaveFile{
		Version:      CurrentVersion,
		CreatedAt:    now,
		LastModified: now,
		GameVersion:  gameVersion,
		Engine:       snapshot,
	}
}

func captureFactory(f *factory.Factory) FactorySnapshot {
	snapshot := FactorySnapshot{
		ID:          f.ID(),
		Name:        f.Name(),
		Description: f.Description(),
		Incoming:    f.IncomingFluxes(),
		Outgoing:    f.OutgoingFluxes(),
	}
	for _, line := range f.ProductionLines() {
		snapshot.ProductionLines = append(snapshot.ProductionLines, captureLine(line))
	}
	for _, input := range f.RawInputs() {
		snapshot.RawInputs = append(snapshot.RawInputs, captureRawInput(input))
	}
	for _, generator := range f.PowerGenerators() {
		snapshot.Generators = append(snapshot.Generators, captureGenerator(generator))
	}
	return snapshot
}

func captureLine(line production.ProductionLine) LineSnapshot {
	switch l := line.(type) {
	case *production.RecipeLine:
		snapshot := LineSnapshot{
			ID:     l.ID(),
			Name:   l.Name(),
			Kind:   LineKindRecipe,
			Recipe: string(l.Recipe()),
		}
		for _, group := range l.MachineGroups() {
			snapshot.Groups = append(snapshot.Groups, GroupSnapshot{
				Count:    group.Count(),
				Clock:    group.Clock(),
				Augments: group.Augments(),
			})
		}
		return snapshot
	case *production.BlueprintLine:
		snapshot := LineSnapshot{ID: l.ID(), Name: l.Name(), Kind: LineKindBlueprint}
		for _, nested := range l.RecipeLines() {
			snapshot.Lines = append(snapshot.Lines, captureLine(nested))
		}
		return snapshot
	}
	panic("save: unknown production line form")
}

func captureRawInput(input extraction.RawInput) RawInputSnapshot {
	switch r := input.(type) {
	case *extraction.Extractor:
		snapshot := RawInputSnapshot{
			ID:            r.ID(),
			Kind:          RawInputKindExtractor,
			Item:          string(r.Item()),
			ExtractorType: string(r.ExtractorType()),
		}
		if purity, ok := r.Purity(); ok {
			snapshot.Purity = string(purity)
		}
		return snapshot
	case *extraction.ResourceWell:
		snapshot := RawInputSnapshot{
			ID:    r.ID(),
			Kind:  RawInputKindWell,
			Item:  string(r.Item()),
			Clock: r.Clock(),
		}
		for _, satellite := range r.Satellites() {
			snapshot.Satellites = append(snapshot.Satellites, string(satellite.Purity()))
		}
		return snapshot
	}
	panic("save: unknown raw input form")
}

func captureGenerator(generator *power.PowerGenerator) GeneratorSnapshot {
	snapshot := GeneratorSnapshot{
		ID:   generator.ID(),
		Type: string(generator.GeneratorType()),
	}
	if fuel, ok := generator.Fuel(); ok {
		snapshot.Fuel = string(fuel)
	}
	for _, group := range generator.Groups() {
		snapshot.Groups = append(snapshot.Groups, GenGroupSnapshot{
			Count: group.Count(),
			Clock: group.Clock(),
		})
	}
	return snapshot
}

func captureFlux(flux *logistics.LogisticsFlux) FluxSnapshot {
	snapshot := FluxSnapshot{
		ID:      flux.ID(),
		From:    flux.FromFactory(),
		To:      flux.ToFactory(),
		Variant: string(flux.Transport().Variant()),
		Details: flux.Details(),
	}
	switch t := flux.Transport().(type) {
	case *logistics.BusTransport:
		snapshot.Conveyors = captureFlows(t.Conveyors())
		snapshot.Pipelines = captureFlows(t.Pipelines())
	case *logistics.TrainTransport:
		for _, wagon := range t.Wagons() {
			snapshot.Wagons = append(snapshot.Wagons, captureFlows(wagon.Flows))
		}
	case *logistics.TruckTransport:
		flow := captureFlows(t.Items())[0]
		snapshot.Flow = &flow
	case *logistics.DroneTransport:
		flow := captureFlows(t.Items())[0]
		snapshot.Flow = &flow
	}
	return snapshot
}

func captureFlows(flows []logistics.ItemFlow) []FlowSnapshot {
	result := make([]FlowSnapshot, 0, len(flows))
	for _, flow := range flows {
		result = append(result, FlowSnapshot{Item: string(flow.Item), RatePerMin: flow.RatePerMin})
	}
	return result
}
