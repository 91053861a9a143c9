package factory

import "github.com/andrescamacho/factoryplanner-go/internal/domain/logistics"

// FluxResolver resolves logistics flux ids to records. Factories store ids
// only; the engine owns the flat registry and routes every lookup, so the
// two endpoint factories never alias a shared handle.
type FluxResolver interface {
	Flux(id string) (*logistics.LogisticsFlux, bool)
}
