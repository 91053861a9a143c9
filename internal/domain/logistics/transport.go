package logistics

import "github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"

// TransportVariant names one of the four carrier kinds.
type TransportVariant string

const (
	VariantBus   TransportVariant = "BUS"
	VariantTrain TransportVariant = "TRAIN"
	VariantTruck TransportVariant = "TRUCK"
	VariantDrone TransportVariant = "DRONE"
)

// ItemFlow is one carried flow: an item at a per-minute rate.
type ItemFlow struct {
	Item       catalog.Item
	RatePerMin float64
}

// Transport is the closed union over the four carriers. Items returns the
// carried flows in declaration order; flows are never merged by item at this
// layer, so a link may carry the same item on two conveyors as two entries.
// IDs are stable and carry a variant-specific prefix.
type Transport interface {
	ID() string
	Variant() TransportVariant
	Items() []ItemFlow

	isTransport()
}

var (
	_ Transport = (*BusTransport)(nil)
	_ Transport = (*TrainTransport)(nil)
	_ Transport = (*TruckTransport)(nil)
	_ Transport = (*DroneTransport)(nil)
)

// BusTransport is a belt-and-pipe bus: any number of conveyor flows plus any
// number of pipeline flows.
type BusTransport struct {
	id        string
	conveyors []ItemFlow
	pipelines []ItemFlow
}

// NewBusTransport builds a bus carrying the given conveyor and pipeline flows.
func NewBusTransport(id string, conveyors, pipelines []ItemFlow) *BusTransport {
	return &BusTransport{
		id:        id,
		conveyors: append([]ItemFlow(nil), conveyors...),
		pipelines: append([]ItemFlow(nil), pipelines...),
	}
}

func (b *BusTransport) ID() string                { return b.id }
func (b *BusTransport) Variant() TransportVariant { return VariantBus }

func (b *BusTransport) Conveyors() []ItemFlow { return append([]ItemFlow(nil), b.conveyors...) }
func (b *BusTransport) Pipelines() []ItemFlow { return append([]ItemFlow(nil), b.pipelines...) }

// Items concatenates conveyor flows then pipeline flows, each in
// declaration order.
func (b *BusTransport) Items() []ItemFlow {
	flows := make([]ItemFlow, 0, len(b.conveyors)+len(b.pipelines))
	flows = append(flows, b.conveyors...)
	flows = append(flows, b.pipelines...)
	return flows
}

func (b *BusTransport) isTransport() {}

// Wagon is one train wagon carrying an ordered list of flows.
type Wagon struct {
	Flows []ItemFlow
}

// TrainTransport is a consist of wagons.
type TrainTransport struct {
	id     string
	wagons []Wagon
}

// NewTrainTransport builds a train carrying the given wagons.
func NewTrainTransport(id string, wagons []Wagon) *TrainTransport {
	return &TrainTransport{id: id, wagons: append([]Wagon(nil), wagons...)}
}

func (t *TrainTransport) ID() string                { return t.id }
func (t *TrainTransport) Variant() TransportVariant { return VariantTrain }

func (t *TrainTransport) Wagons() []Wagon { return append([]Wagon(nil), t.wagons...) }

// Items concatenates wagon flows in wagon order.
func (t *TrainTransport) Items() []ItemFlow {
	var flows []ItemFlow
	for _, wagon := range t.wagons {
		flows = append(flows, wagon.Flows...)
	}
	return flows
}

func (t *TrainTransport) isTransport() {}

// TruckTransport carries exactly one flow.
type TruckTransport struct {
	id   string
	flow ItemFlow
}

func NewTruckTransport(id string, flow ItemFlow) *TruckTransport {
	return &TruckTransport{id: id, flow: flow}
}

func (t *TruckTransport) ID() string                { return t.id }
func (t *TruckTransport) Variant() TransportVariant { return VariantTruck }
func (t *TruckTransport) Items() []ItemFlow         { return []ItemFlow{t.flow} }

func (t *TruckTransport) isTransport() {}

// DroneTransport carries exactly one flow.
type DroneTransport struct {
	id   string
	flow ItemFlow
}

func NewDroneTransport(id string, flow ItemFlow) *DroneTransport {
	return &DroneTransport{id: id, flow: flow}
}

func (d *DroneTransport) ID() string                { return d.id }
func (d *DroneTransport) Variant() TransportVariant { return VariantDrone }
func (d *DroneTransport) Items() []ItemFlow         { return []ItemFlow{d.flow} }

func (d *DroneTransport) isTransport() {}
