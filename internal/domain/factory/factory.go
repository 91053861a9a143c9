package factory

import (
	"github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/extraction"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/power"
	"github.com/andrescamacho/factoryplanner-go/internal/domain/production"
)

// Factory is the aggregate root for one production facility. It owns its
// production lines, raw inputs and generators; logistics fluxes are held as
// ids into the engine's registry. Collections keep declaration order so the
// balance sum is bit-reproducible across runs.
type Factory struct {
	id          int
	name        string
	description string

	lines      []production.ProductionLine
	rawInputs  []extraction.RawInput
	generators []*power.PowerGenerator

	incoming []string
	outgoing []string

	// items is the balance computed by the last CalculateItems call.
	items map[catalog.Item]float64
}

// New creates an empty factory. IDs are assigned by the engine,
// monotonically.
func New(id int, name, description string) *Factory {
	return &Factory{id: id, name: name, description: description}
}

func (f *Factory) ID() int             { return f.id }
func (f *Factory) Name() string        { return f.name }
func (f *Factory) Description() string { return f.description }

func (f *Factory) Rename(name string)                { f.name = name }
func (f *Factory) SetDescription(description string) { f.description = description }

// Production lines

// AddProductionLine appends a line, rejecting a duplicate id.
func (f *Factory) AddProductionLine(line production.ProductionLine) error {
	for _, existing := range f.lines {
		if existing.ID() == line.ID() {
			return NewErrDuplicateEntity("production line", line.ID())
		}
	}
	f.lines = append(f.lines, line)
	return nil
}

// RemoveProductionLine removes the line with the given id.
func (f *Factory) RemoveProductionLine(id string) error {
	for i, line := range f.lines {
		if line.ID() == id {
			f.lines = append(f.lines[:i], f.lines[i+1:]...)
			return nil
		}
	}
	return NewErrUnknownEntity("production line", id)
}

// ProductionLines returns the lines in declaration order.
func (f *Factory) ProductionLines() []production.ProductionLine {
	lines := make([]production.ProductionLine, len(f.lines))
	copy(lines, f.lines)
	return lines
}

// ProductionLine returns the line with the given id.
func (f *Factory) ProductionLine(id string) (production.ProductionLine, bool) {
	for _, line := range f.lines {
		if line.ID() == id {
			return line, true
		}
	}
	return nil, false
}

// Raw inputs

// AddRawInput appends a raw input, rejecting a duplicate id.
func (f *Factory) AddRawInput(input extraction.RawInput) error {
	for _, existing := range f.rawInputs {
		if existing.ID() == input.ID() {
			return NewErrDuplicateEntity("raw input", input.ID())
		}
	}
	f.rawInputs = append(f.rawInputs, input)
	return nil
}

// RemoveRawInput removes the raw input with the given id.
func (f *Factory) RemoveRawInput(id string) error {
	for i, input := range f.rawInputs {
		if input.ID() == id {
			f.rawInputs = append(f.rawInputs[:i], f.rawInputs[i+1:]...)
			return nil
		}
	}
	return NewErrUnknownEntity("raw input", id)
}

// RawInputs returns the raw inputs in declaration order.
func (f *Factory) RawInputs() []extraction.RawInput {
	inputs := make([]extraction.RawInput, len(f.rawInputs))
	copy(inputs, f.rawInputs)
	return inputs
}

// RawInput returns the raw input with the given id.
func (f *Factory) RawInput(id string) (extraction.RawInput, bool) {
	for _, input := range f.rawInputs {
		if input.ID() == id {
			return input, true
		}
	}
	return nil, false
}

// Power generators

// AddPowerGenerator appends a generator bank, rejecting a duplicate id.
func (f *Factory) AddPowerGenerator(generator *power.PowerGenerator) error {
	for _, existing := range f.generators {
		if existing.ID() == generator.ID() {
			return NewErrDuplicateEntity("power generator", generator.ID())
		}
	}
	f.generators = append(f.generators, generator)
	return nil
}

// RemovePowerGenerator removes the generator bank with the given id.
func (f *Factory) RemovePowerGenerator(id string) error {
	for i, generator := range f.generators {
		if generator.ID() == id {
			f.generators = append(f.generators[:i], f.generators[i+1:]...)
			return nil
		}
	}
	return NewErrUnknownEntity("power generator", id)
}

// PowerGenerators returns the generator banks in declaration order.
func (f *Factory) PowerGenerators() []*power.PowerGenerator {
	generators := make([]*power.PowerGenerator, len(f.generators))
	copy(generators, f.generators)
	return generators
}

// PowerGenerator returns the generator bank with the given id.
func (f *Factory) PowerGenerator(id string) (*power.PowerGenerator, bool) {
	for _, generator := range f.generators {
		if generator.ID() == id {
			return generator, true
		}
	}
	return nil, false
}

// Logistics references

// AttachIncomingFlux records an inbound flux id. Called by the engine when
// a link is connected.
func (f *Factory) AttachIncomingFlux(id string) {
	f.incoming = append(f.incoming, id)
}

// AttachOutgoingFlux records an outbound flux id.
func (f *Factory) AttachOutgoingFlux(id string) {
	f.outgoing = append(f.outgoing, id)
}

// DetachFlux drops the flux id from both direction lists.
func (f *Factory) DetachFlux(id string) {
	f.incoming = removeID(f.incoming, id)
	f.outgoing = removeID(f.outgoing, id)
}

// IncomingFluxes returns inbound flux ids in attach order.
func (f *Factory) IncomingFluxes() []string { return append([]string(nil), f.incoming...) }

// OutgoingFluxes returns outbound flux ids in attach order.
func (f *Factory) OutgoingFluxes() []string { return append([]string(nil), f.outgoing...) }

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Balance

// CalculateItems recomputes the facility's net item balance from scratch:
// incoming flows add, outgoing flows subtract, raw inputs add, production
// outputs add and production inputs subtract. Terms are accumulated in that
// fixed order, each in declaration order, so repeated runs are
// bit-reproducible. The result is cached on the factory and also returned.
func (f *Factory) CalculateItems(resolver FluxResolver) map[catalog.Item]float64 {
	balance := make(map[catalog.Item]float64)

	for _, id := range f.incoming {
		if flux, ok := resolver.Flux(id); ok {
			for _, flow := range flux.Items() {
				balance[flow.Item] += flow.RatePerMin
			}
		}
	}
	for _, id := range f.outgoing {
		if flux, ok := resolver.Flux(id); ok {
			for _, flow := range flux.Items() {
				balance[flow.Item] -= flow.RatePerMin
			}
		}
	}
	for _, input := range f.rawInputs {
		balance[input.Item()] += input.QuantityPerMin()
	}
	for _, line := range f.lines {
		for item, rate := range line.OutputRate() {
			balance[item] += rate
		}
		for item, rate := range line.InputRate() {
			balance[item] -= rate
		}
	}

	f.items = balance
	return balance
}

// Items returns the balance computed by the last CalculateItems call, or nil
// if none has run yet.
func (f *Factory) Items() map[catalog.Item]float64 { return f.items }

// TotalPowerConsumption sums production-line power only. Raw-input and
// generator draw are reported through the power stats instead of this total.
func (f *Factory) TotalPowerConsumption() float64 {
	total := 0.0
	for _, line := range f.lines {
		total += line.TotalPower()
	}
	return total
}

// TotalGeneration sums the output of all generator banks in MW.
func (f *Factory) TotalGeneration() float64 {
	total := 0.0
	for _, generator := range f.generators {
		total += generator.TotalGeneration()
	}
	return total
}
