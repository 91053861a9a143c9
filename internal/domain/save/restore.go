package save

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/engine"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/extraction"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/factory"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/logistics"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/power"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
)

// CheckCompatibility gates a snapshot version against the running engine's
// save version: equal majors load, a higher major fails as too new, a lower
// major fails as too old. There is no cross-major migration.
func CheckCompatibility(snapshotVersion string) error {
	snapshot, err := ParseSemVer(snapshotVersion)
	if err != nil {
		return err
	}
	current := MustParseSemVer(CurrentVersion)

	if snapshot.IsCompatibleWith(current) {
		return nil
	}
	if snapshot.Major > current.Major {
		return NewErrSnapshotTooNew(snapshot, current)
	}
	return NewErrSnapshotTooOld(snapshot, current)
}

// Restore rebuilds an engine from a snapshot, gating on the save version
// first. Every entity is rebuilt through its domain constructor, so a
// snapshot that violates a domain invariant fails the load.
func Restore(file *SaveFile) (*engine.Engine, error) {
	if err := CheckCompatibility(file.Version); err != nil {
		return nil, err
	}

	eng := engine.New()

	// Factories in ascending id order, so restored ids are deterministic
	// and the id counter lands past the highest.
	factoryIDs := make([]int, 0, len(file.Engine.Factories))
	for key := range file.Engine.Factories {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("restore: bad factory key %q: %w", key, err)
		}
		factoryIDs = append(factoryIDs, id)
	}
	sort.Ints(factoryIDs)

	for _, id := range factoryIDs {
		snapshot := file.Engine.Factories[strconv.Itoa(id)]
		f, err := restoreFactory(snapshot)
		if err != nil {
			return nil, fmt.Errorf("restore factory %d: %w", id, err)
		}
		eng.RestoreFactory(f)
	}

	fluxIDs := make([]string, 0, len(file.Engine.LogisticsLines))
	for id := range file.Engine.LogisticsLines {
		fluxIDs = append(fluxIDs, id)
	}
	sort.Strings(fluxIDs)

	for _, id := range fluxIDs {
		snapshot := file.Engine.LogisticsLines[id]
		flux, err := restoreFlux(snapshot)
		if err != nil {
			return nil, fmt.Errorf("restore flux %s: %w", id, err)
		}
		eng.RestoreFlux(flux)
	}

	return eng, nil
}

func restoreFactory(snapshot FactorySnapshot) (*factory.Factory, error) {
	f := factory.New(snapshot.ID, snapshot.Name, snapshot.Description)

	for _, lineSnapshot := range snapshot.ProductionLines {
		line, err := restoreLine(lineSnapshot)
		if err != nil {
			return nil, err
		}
		if err := f.AddProductionLine(line); err != nil {
			return nil, err
		}
	}
	for _, inputSnapshot := range snapshot.RawInputs {
		input, err := restoreRawInput(inputSnapshot)
		if err != nil {
			return nil, err
		}
		if err := f.AddRawInput(input); err != nil {
			return nil, err
		}
	}
	for _, generatorSnapshot := range snapshot.Generators {
		generator, err := restoreGenerator(generatorSnapshot)
		if err != nil {
			return nil, err
		}
		if err := f.AddPowerGenerator(generator); err != nil {
			return nil, err
		}
	}
	for _, id := range snapshot.Incoming {
		f.AttachIncomingFlux(id)
	}
	for _, id := range snapshot.Outgoing {
		f.AttachOutgoingFlux(id)
	}
	return f, nil
}

func restoreLine(snapshot LineSnapshot) (production.ProductionLine, error) {
	switch snapshot.Kind {
	case LineKindRecipe:
		return restoreRecipeLine(snapshot)
	case LineKindBlueprint:
		lines := make([]*production.RecipeLine, 0, len(snapshot.Lines))
		for _, nested := range snapshot.Lines {
			line, err := restoreRecipeLine(nested)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
		return production.NewBlueprintLine(snapshot.ID, snapshot.Name, lines)
	}
	return nil, fmt.Errorf("unknown production line kind %q", snapshot.Kind)
}

func restoreRecipeLine(snapshot LineSnapshot) (*production.RecipeLine, error) {
	line, err := production.NewRecipeLine(snapshot.ID, snapshot.Name, catalog.Recipe(snapshot.Recipe))
	if err != nil {
		return nil, err
	}
	for _, group := range snapshot.Groups {
		if err := line.AddMachineGroup(group.Count, group.Clock, group.Augments); err != nil {
			return nil, err
		}
	}
	return line, nil
}

func restoreRawInput(snapshot RawInputSnapshot) (extraction.RawInput, error) {
	switch snapshot.Kind {
	case RawInputKindExtractor:
		return extraction.NewExtractor(snapshot.ID,
			catalog.ExtractorType(snapshot.ExtractorType),
			catalog.Item(snapshot.Item),
			catalog.Purity(snapshot.Purity))
	case RawInputKindWell:
		purities := make([]catalog.Purity, 0, len(snapshot.Satellites))
		for _, purity := range snapshot.Satellites {
			purities = append(purities, catalog.Purity(purity))
		}
		return extraction.NewResourceWell(snapshot.ID, catalog.Item(snapshot.Item), snapshot.Clock, purities)
	}
	return nil, fmt.Errorf("unknown raw input kind %q", snapshot.Kind)
}

func restoreGenerator(snapshot GeneratorSnapshot) (*power.PowerGenerator, error) {
	var generator *power.PowerGenerator
	var err error
	if snapshot.Fuel == "" {
		generatorType := catalog.GeneratorType(snapshot.Type)
		if generatorType != catalog.GeneratorGeothermal {
			return nil, power.NewErrFuelRequired(snapshot.Type)
		}
		generator = power.NewGeothermalGenerator(snapshot.ID)
	} else {
		generator, err = power.NewPowerGenerator(snapshot.ID,
			catalog.GeneratorType(snapshot.Type), catalog.Item(snapshot.Fuel))
		if err != nil {
			return nil, err
		}
	}
	for _, group := range snapshot.Groups {
		if err := generator.AddGroup(group.Count, group.Clock); err != nil {
			return nil, err
		}
	}
	return generator, nil
}

func restoreFlux(snapshot FluxSnapshot) (*logistics.LogisticsFlux, error) {
	var transport logistics.Transport
	switch logistics.TransportVariant(snapshot.Variant) {
	case logistics.VariantBus:
		transport = logistics.NewBusTransport(snapshot.ID,
			restoreFlows(snapshot.Conveyors), restoreFlows(snapshot.Pipelines))
	case logistics.VariantTrain:
		wagons := make([]logistics.Wagon, 0, len(snapshot.Wagons))
		for _, flows := range snapshot.Wagons {
			wagons = append(wagons, logistics.Wagon{Flows: restoreFlows(flows)})
		}
		transport = logistics.NewTrainTransport(snapshot.ID, wagons)
	case logistics.VariantTruck:
		if snapshot.Flow == nil {
			return nil, fmt.Errorf("truck flux %s has no flow", snapshot.ID)
		}
		transport = logistics.NewTruckTransport(snapshot.ID, restoreFlow(*snapshot.Flow))
	case logistics.VariantDrone:
		if snapshot.Flow == nil {
			return nil, fmt.Errorf("drone flux %s has no flow", snapshot.ID)
		}
		transport = logistics.NewDroneTransport(snapshot.ID, restoreFlow(*snapshot.Flow))
	default:
		return nil, fmt.Errorf("unknown transport variant %q", snapshot.Variant)
	}

	return logistics.NewLogisticsFlux(snapshot.From, snapshot.To, transport, snapshot.Details), nil
}

func restoreFlows(flows []FlowSnapshot) []logistics.ItemFlow {
	result := make([]logistics.ItemFlow, 0, len(flows))
	for _, flow := range flows {
		result = append(result, restoreFlow(flow))
	}
	return result
}

func restoreFlow(flow FlowSnapshot) logistics.ItemFlow {
	return logistics.ItemFlow{Item: catalog.Item(flow.Item), RatePerMin: flow.RatePerMin}
}
