package planner

// DTOs crossing the application boundary. Domain types never leave the
// service; adapters see these instead.

// FactorySummary is the list/detail view of one factory.
type FactorySummary struct {
	ID              int
	Name            string
	Description     string
	ProductionLines int
	RawInputs       int
	Generators      int
	Incoming        []string
	Outgoing        []string
}

// RecipeLineSpec configures one recipe line: the recipe plus its machine
// groups.
type RecipeLineSpec struct {
	Name   string
	Recipe string
	Groups []MachineGroupSpec
}

// MachineGroupSpec configures one machine group of a recipe line.
type MachineGroupSpec struct {
	Count    int
	Clock    float64
	Augments int
}

// GeneratorGroupSpec configures one group of a generator bank.
type GeneratorGroupSpec struct {
	Count int
	Clock float64
}

// FlowSpec is one item flow carried by a transport.
type FlowSpec struct {
	Item       string
	RatePerMin float64
}

// TransportSpec describes the carrier for a new logistics line. Exactly the
// payload fields matching Variant are honored: BUS reads Conveyors and
// Pipelines, TRAIN reads Wagons, TRUCK and DRONE read Flow.
type TransportSpec struct {
	Variant   string
	Conveyors []FlowSpec
	Pipelines []FlowSpec
	Wagons    [][]FlowSpec
	Flow      *FlowSpec
	Details   string
}

// FluxSummary is the list view of one logistics line.
type FluxSummary struct {
	ID      string
	From    int
	To      int
	Variant string
	Details string
	Items   []FlowSpec
}

// ItemBalance is one item's net rate in a balance report, positive for
// surplus and negative for deficit.
type ItemBalance struct {
	Item       string
	RatePerMin float64
}

// FuelBurn is one fuel item's total burn rate across a factory's generator
// banks.
type FuelBurn struct {
	Fuel       string
	RatePerMin float64
}

// PowerRow is one factory's line in a power report.
type PowerRow struct {
	FactoryID     int
	FactoryName   string
	GenerationMW  float64
	ConsumptionMW float64
	BalanceMW     float64
}

// PowerReport aggregates per-factory power rows with grid totals.
type PowerReport struct {
	Rows               []PowerRow
	TotalGenerationMW  float64
	TotalConsumptionMW float64
	TotalBalanceMW     float64
}

// SnapshotSummary is the list view of one stored save file.
type SnapshotSummary struct {
	Name         string
	Version      string
	GameVersion  string
	CreatedAt    string
	LastModified string
}
