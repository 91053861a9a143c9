package engine

import (
	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/factory"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/logistics"
	"github.com/andrescamacho/factoryplanner-go/pkg/utils"
)

// Engine owns every factory and the canonical logistics flux registry.
// Factories reference fluxes by id only; all lookups route through here
// (arena+id, no shared handles between the two endpoint factories).
//
// The engine is synchronous and does no locking of its own; callers supply
// one serialization point around it.
type Engine struct {
	nextFactoryID int

	factories    map[int]*factory.Factory
	factoryOrder []int

	fluxes    map[string]*logistics.LogisticsFlux
	fluxOrder []string
}

// New creates an empty engine.
func New() *Engine {
	return &Engine{
		nextFactoryID: 1,
		factories:     make(map[int]*factory.Factory),
		fluxes:        make(map[string]*logistics.LogisticsFlux),
	}
}

// CreateFactory registers a new factory under a monotonically assigned id.
func (e *Engine) CreateFactory(name, description string) *factory.Factory {
	id := e.nextFactoryID
	e.nextFactoryID++

	f := factory.New(id, name, description)
	e.factories[id] = f
	e.factoryOrder = append(e.factoryOrder, id)
	return f
}

// RestoreFactory re-registers a factory under its persisted id, bumping the
// id counter past it. Used by snapshot loading only.
func (e *Engine) RestoreFactory(f *factory.Factory) {
	e.factories[f.ID()] = f
	e.factoryOrder = append(e.factoryOrder, f.ID())
	if f.ID() >= e.nextFactoryID {
		e.nextFactoryID = f.ID() + 1
	}
}

// Factory returns the factory with the given id.
func (e *Engine) Factory(id int) (*factory.Factory, bool) {
	f, ok := e.factories[id]
	return f, ok
}

// Factories returns all factories in creation order.
func (e *Engine) Factories() []*factory.Factory {
	result := make([]*factory.Factory, 0, len(e.factoryOrder))
	for _, id := range e.factoryOrder {
		result = append(result, e.factories[id])
	}
	return result
}

// RemoveFactory deletes a factory by id. Fluxes referencing it are not
// cascaded here; callers remove them first via RemoveLogisticsLine.
func (e *Engine) RemoveFactory(id int) error {
	if _, ok := e.factories[id]; !ok {
		return NewErrUnknownFactory(id)
	}
	delete(e.factories, id)
	for i, candidate := range e.factoryOrder {
		if candidate == id {
			e.factoryOrder = append(e.factoryOrder[:i], e.factoryOrder[i+1:]...)
			break
		}
	}
	return nil
}

// ConnectFactories creates a logistics flux between two existing factories
// over the given carrier and registers it with both endpoints. Fails with a
// reference error if either endpoint id is unknown; nothing is registered
// on failure.
func (e *Engine) ConnectFactories(from, to int, transport logistics.Transport, details string) (*logistics.LogisticsFlux, error) {
	source, ok := e.factories[from]
	if !ok {
		return nil, NewErrUnknownFactory(from)
	}
	destination, ok := e.factories[to]
	if !ok {
		return nil, NewErrUnknownFactory(to)
	}

	flux := logistics.NewLogisticsFlux(from, to, transport, details)
	e.fluxes[flux.ID()] = flux
	e.fluxOrder = append(e.fluxOrder, flux.ID())
	source.AttachOutgoingFlux(flux.ID())
	destination.AttachIncomingFlux(flux.ID())
	return flux, nil
}

// NewTransportID mints a variant-prefixed carrier id.
func NewTransportID(variant logistics.TransportVariant) string {
	return utils.GenerateTransportID(string(variant))
}

// RestoreFlux re-registers a persisted flux without touching endpoint
// factories (their id lists are restored separately). Snapshot loading only.
func (e *Engine) RestoreFlux(flux *logistics.LogisticsFlux) {
	e.fluxes[flux.ID()] = flux
	e.fluxOrder = append(e.fluxOrder, flux.ID())
}

// Flux returns the flux with the given id. Implements factory.FluxResolver.
func (e *Engine) Flux(id string) (*logistics.LogisticsFlux, bool) {
	flux, ok := e.fluxes[id]
	return flux, ok
}

// Fluxes returns all fluxes in creation order.
func (e *Engine) Fluxes() []*logistics.LogisticsFlux {
	result := make([]*logistics.LogisticsFlux, 0, len(e.fluxOrder))
	for _, id := range e.fluxOrder {
		result = append(result, e.fluxes[id])
	}
	return result
}

// RemoveLogisticsLine deletes a flux and detaches it from both endpoints.
func (e *Engine) RemoveLogisticsLine(id string) error {
	flux, ok := e.fluxes[id]
	if !ok {
		return NewErrUnknownFlux(id)
	}

	if source, ok := e.factories[flux.FromFactory()]; ok {
		source.DetachFlux(id)
	}
	if destination, ok := e.factories[flux.ToFactory()]; ok {
		destination.DetachFlux(id)
	}
	delete(e.fluxes, id)
	for i, candidate := range e.fluxOrder {
		if candidate == id {
			e.fluxOrder = append(e.fluxOrder[:i], e.fluxOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Update recomputes every factory's item balance and merges them into one
// global map by item identity. The returned map is freshly built; inputs
// are never mutated.
func (e *Engine) Update() map[catalog.Item]float64 {
	global := make(map[catalog.Item]float64)
	for _, id := range e.factoryOrder {
		for item, rate := range e.factories[id].CalculateItems(e) {
			global[item] += rate
		}
	}
	return global
}
