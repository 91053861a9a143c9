package logistics

// LogisticsFlux is a directed transport link between two facilities. The
// flux is owned by the engine's registry; factories reference it by id only,
// so both endpoints observe the same record without sharing a handle.
type LogisticsFlux struct {
	id          string
	fromFactory int
	toFactory   int
	transport   Transport
	details     string
}

// NewLogisticsFlux builds a flux over a carrier. The flux takes the
// carrier's variant-prefixed id as its own. Endpoint existence is the
// registry's concern, checked when the link is registered.
func NewLogisticsFlux(fromFactory, toFactory int, transport Transport, details string) *LogisticsFlux {
	return &LogisticsFlux{
		id:          transport.ID(),
		fromFactory: fromFactory,
		toFactory:   toFactory,
		transport:   transport,
		details:     details,
	}
}

func (f *LogisticsFlux) ID() string           { return f.id }
func (f *LogisticsFlux) FromFactory() int     { return f.fromFactory }
func (f *LogisticsFlux) ToFactory() int       { return f.toFactory }
func (f *LogisticsFlux) Transport() Transport { return f.transport }
func (f *LogisticsFlux) Details() string      { return f.details }

// Items returns the carried flows in carrier order.
func (f *LogisticsFlux) Items() []ItemFlow {
	return f.transport.Items()
}
