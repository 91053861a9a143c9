package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/factoryplanner-go/internal/application/planner"
)

type plannerContext struct {
	svc       *planner.Service
	factories map[string]int
	err       error
}

func (pc *plannerContext) reset() {
	pc.svc = planner.NewService(newMemorySnapshotRepository(), nil)
	pc.factories = make(map[string]int)
	pc.err = nil
}

func (pc *plannerContext) factoryID(name string) (int, error) {
	id, ok := pc.factories[name]
	if !ok {
		return 0, fmt.Errorf("no factory named %q in scenario", name)
	}
	return id, nil
}

// Setup steps

func (pc *plannerContext) aFactoryNamed(name string) error {
	summary := pc.svc.CreateFactory(name, "")
	pc.factories[name] = summary.ID
	return nil
}

func (pc *plannerContext) aRecipeLine(factory, recipe string, count int, clock float64) error {
	return pc.aRecipeLineWithAugments(factory, recipe, count, clock, 0)
}

func (pc *plannerContext) aRecipeLineWithAugments(factory, recipe string, count int, clock float64, augments int) error {
	id, err := pc.factoryID(factory)
	if err != nil {
		return err
	}
	_, err = pc.svc.AddRecipeLine(id, planner.RecipeLineSpec{
		Name:   recipe,
		Recipe: recipe,
		Groups: []planner.MachineGroupSpec{{Count: count, Clock: clock, Augments: augments}},
	})
	return err
}

func (pc *plannerContext) anExtractor(factory, extractorType, item, purity string) error {
	id, err := pc.factoryID(factory)
	if err != nil {
		return err
	}
	_, err = pc.svc.AddExtractor(id, extractorType, item, purity)
	return err
}

func (pc *plannerContext) aResourceWell(factory, item string, clock float64, table *godog.Table) error {
	id, err := pc.factoryID(factory)
	if err != nil {
		return err
	}
	var purities []string
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		purities = append(purities, row.Cells[0].Value)
	}
	_, err = pc.svc.AddResourceWell(id, item, clock, purities)
	return err
}

func (pc *plannerContext) generators(factory string, count int, generatorType, fuel string, clock float64) error {
	id, err := pc.factoryID(factory)
	if err != nil {
		return err
	}
	_, err = pc.svc.AddGenerator(id, generatorType, fuel,
		[]planner.GeneratorGroupSpec{{Count: count, Clock: clock}})
	return err
}

func (pc *plannerContext) aGeothermalGenerator(factory string, clock float64) error {
	id, err := pc.factoryID(factory)
	if err != nil {
		return err
	}
	_, err = pc.svc.AddGenerator(id, "GEOTHERMAL_GENERATOR", "",
		[]planner.GeneratorGroupSpec{{Count: 1, Clock: clock}})
	return err
}

func (pc *plannerContext) aLogisticsLine(variant, from, to, item string, rate float64) error {
	fromID, err := pc.factoryID(from)
	if err != nil {
		return err
	}
	toID, err := pc.factoryID(to)
	if err != nil {
		return err
	}

	flow := planner.FlowSpec{Item: item, RatePerMin: rate}
	spec := planner.TransportSpec{Variant: variant}
	switch variant {
	case "BUS":
		spec.Conveyors = []planner.FlowSpec{flow}
	case "TRAIN":
		spec.Wagons = [][]planner.FlowSpec{{flow}}
	default:
		spec.Flow = &flow
	}

	_, err = pc.svc.Connect(fromID, toID, spec)
	return err
}

// Action steps

func (pc *plannerContext) iAttemptToAddARecipeLine(recipe, factory string, count int, clock float64) error {
	id, err := pc.factoryID(factory)
	if err != nil {
		return err
	}
	_, pc.err = pc.svc.AddRecipeLine(id, planner.RecipeLineSpec{
		Name:   recipe,
		Recipe: recipe,
		Groups: []planner.MachineGroupSpec{{Count: count, Clock: clock}},
	})
	return nil
}

func (pc *plannerContext) theOperationShouldFail() error {
	if pc.err == nil {
		return fmt.Errorf("expected an error but the operation succeeded")
	}
	return nil
}

// Assertion steps

func (pc *plannerContext) globalBalanceShouldBe(item string, expected float64) error {
	for _, entry := range pc.svc.GlobalBalance() {
		if entry.Item == item {
			return assertRate(item, expected, entry.RatePerMin)
		}
	}
	if expected == 0 {
		return nil
	}
	return fmt.Errorf("item %s absent from global balance, expected %g", item, expected)
}

func (pc *plannerContext) factoryBalanceShouldBe(factory, item string, expected float64) error {
	id, err := pc.factoryID(factory)
	if err != nil {
		return err
	}
	balance, err := pc.svc.FactoryBalance(id)
	if err != nil {
		return err
	}
	for _, entry := range balance {
		if entry.Item == item {
			return assertRate(item, expected, entry.RatePerMin)
		}
	}
	if expected == 0 {
		return nil
	}
	return fmt.Errorf("item %s absent from balance of %s, expected %g", item, factory, expected)
}

func (pc *plannerContext) factoryShouldGenerate(factory string, expected float64) error {
	return pc.assertPowerRow(factory, expected, func(row planner.PowerRow) float64 { return row.GenerationMW })
}

func (pc *plannerContext) factoryShouldConsume(factory string, expected float64) error {
	return pc.assertPowerRow(factory, expected, func(row planner.PowerRow) float64 { return row.ConsumptionMW })
}

func (pc *plannerContext) factoryShouldBurn(factory, fuel string, expected float64) error {
	id, err := pc.factoryID(factory)
	if err != nil {
		return err
	}
	burns, err := pc.svc.FuelConsumption(id)
	if err != nil {
		return err
	}
	for _, burn := range burns {
		if burn.Fuel == fuel {
			return assertRate(fuel, expected, burn.RatePerMin)
		}
	}
	return fmt.Errorf("fuel %s absent from burn report of %s, expected %g", fuel, factory, expected)
}

func (pc *plannerContext) gridBalanceShouldBe(expected float64) error {
	report := pc.svc.PowerStats()
	if math.Abs(report.TotalBalanceMW-expected) > 1e-6 {
		return fmt.Errorf("grid balance is %g MW, expected %g", report.TotalBalanceMW, expected)
	}
	return nil
}

func (pc *plannerContext) assertPowerRow(factory string, expected float64, pick func(planner.PowerRow) float64) error {
	id, err := pc.factoryID(factory)
	if err != nil {
		return err
	}
	for _, row := range pc.svc.PowerStats().Rows {
		if row.FactoryID == id {
			actual := pick(row)
			if math.Abs(actual-expected) > 1e-6 {
				return fmt.Errorf("%s: got %g MW, expected %g", factory, actual, expected)
			}
			return nil
		}
	}
	return fmt.Errorf("factory %s missing from power report", factory)
}

func assertRate(item string, expected, actual float64) error {
	if math.Abs(actual-expected) > 1e-6 {
		return fmt.Errorf("%s: got %g per minute, expected %g", item, actual, expected)
	}
	return nil
}

// InitializePlannerScenario registers production, extraction, power and
// balance step definitions.
func InitializePlannerScenario(sc *godog.ScenarioContext) {
	pc := &plannerContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	sc.Step(`^a factory named "([^"]*)"$`, pc.aFactoryNamed)
	sc.Step(`^"([^"]*)" has a recipe line for "([^"]*)" with (\d+) machines? at (\d+(?:\.\d+)?)% clock$`, pc.aRecipeLine)
	sc.Step(`^"([^"]*)" has a recipe line for "([^"]*)" with (\d+) machines? at (\d+(?:\.\d+)?)% clock and (\d+) augments? per machine$`, pc.aRecipeLineWithAugments)
	sc.Step(`^"([^"]*)" has a "([^"]*)" extracting "([^"]*)" at "([^"]*)" purity$`, pc.anExtractor)
	sc.Step(`^"([^"]*)" has a resource well for "([^"]*)" at (\d+(?:\.\d+)?)% clock with satellites:$`, pc.aResourceWell)
	sc.Step(`^"([^"]*)" has (\d+) "([^"]*)" generators? burning "([^"]*)" at (\d+(?:\.\d+)?)% clock$`, pc.generators)
	sc.Step(`^"([^"]*)" has a geothermal generator at (\d+(?:\.\d+)?)% clock$`, pc.aGeothermalGenerator)
	sc.Step(`^a "([^"]*)" line from "([^"]*)" to "([^"]*)" carrying "([^"]*)" at (\d+(?:\.\d+)?) per minute$`, pc.aLogisticsLine)

	sc.Step(`^I attempt to add a recipe line for "([^"]*)" to "([^"]*)" with (\d+) machines? at (-?\d+(?:\.\d+)?)% clock$`, pc.iAttemptToAddARecipeLine)
	sc.Step(`^the operation should fail$`, pc.theOperationShouldFail)

	sc.Step(`^the global balance for "([^"]*)" should be (-?\d+(?:\.\d+)?) per minute$`, pc.globalBalanceShouldBe)
	sc.Step(`^the balance of "([^"]*)" for "([^"]*)" should be (-?\d+(?:\.\d+)?) per minute$`, pc.factoryBalanceShouldBe)
	sc.Step(`^"([^"]*)" should generate (\d+(?:\.\d+)?) MW$`, pc.factoryShouldGenerate)
	sc.Step(`^"([^"]*)" should consume (\d+(?:\.\d+)?) MW$`, pc.factoryShouldConsume)
	sc.Step(`^"([^"]*)" should burn "([^"]*)" at (\d+(?:\.\d+)?) per minute$`, pc.factoryShouldBurn)
	sc.Step(`^the grid balance should be (-?\d+(?:\.\d+)?) MW$`, pc.gridBalanceShouldBe)
}
