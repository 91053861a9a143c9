package extraction

import "github.com/andrescamacho/factoryplanner-go/internal/domain/catalog"

// WellSatellite is one extraction head on a resource well. Satellites have
// no clock and no power of their own; the shared pressurizer drives them.
type WellSatellite struct {
	purity catalog.Purity
}

func (s WellSatellite) Purity() catalog.Purity { return s.purity }

// BaseRate returns the satellite's yield at 100% pressurizer clock.
func (s WellSatellite) BaseRate() float64 {
	return catalog.WellSatelliteRate(s.purity)
}

// ResourceWell is the composite raw-input form: one pressurizer shared by
// several satellites. The pressurizer bears the whole power cost under the
// same non-linear clock law as production machines, while the combined yield
// scales linearly with clock. The well must retain at least one satellite
// at all times.
type ResourceWell struct {
	id         string
	item       catalog.Item
	clock      float64
	satellites []WellSatellite
}

// NewResourceWell validates the tapped item, the pressurizer clock, and the
// satellite purities; at least one satellite is required.
func NewResourceWell(id string, item catalog.Item, clock float64, purities []catalog.Purity) (*ResourceWell, error) {
	if !catalog.CanTapWell(item) {
		return nil, NewErrWellCannotTap(string(item))
	}
	if !catalog.IsValidClock(clock) {
		return nil, NewErrClockOutOfRange(clock)
	}
	if len(purities) == 0 {
		return nil, NewErrNoSatellites()
	}

	satellites := make([]WellSatellite, 0, len(purities))
	for _, purity := range purities {
		if !catalog.IsValidPurity(purity) {
			return nil, NewErrInvalidPurity(string(purity))
		}
		satellites = append(satellites, WellSatellite{purity: purity})
	}

	return &ResourceWell{id: id, item: item, clock: clock, satellites: satellites}, nil
}

func (w *ResourceWell) ID() string         { return w.id }
func (w *ResourceWell) Item() catalog.Item { return w.item }
func (w *ResourceWell) Clock() float64     { return w.clock }

// Satellites returns a copy of the satellite list in declaration order.
func (w *ResourceWell) Satellites() []WellSatellite {
	satellites := make([]WellSatellite, len(w.satellites))
	copy(satellites, w.satellites)
	return satellites
}

// SetClock re-validates and updates the pressurizer clock. The prior value
// stands on rejection.
func (w *ResourceWell) SetClock(clock float64) error {
	if !catalog.IsValidClock(clock) {
		return NewErrClockOutOfRange(clock)
	}
	w.clock = clock
	return nil
}

// AddSatellite appends an extraction head; the yield reflects it immediately.
func (w *ResourceWell) AddSatellite(purity catalog.Purity) error {
	if !catalog.IsValidPurity(purity) {
		return NewErrInvalidPurity(string(purity))
	}
	w.satellites = append(w.satellites, WellSatellite{purity: purity})
	return nil
}

// RemoveSatellite removes the head at index. Removing the last satellite is
// rejected: the composite must keep at least one.
func (w *ResourceWell) RemoveSatellite(index int) error {
	if index < 0 || index >= len(w.satellites) {
		return NewErrSatelliteIndexOutOfRange(index, len(w.satellites))
	}
	if len(w.satellites) == 1 {
		return NewErrNoSatellites()
	}
	w.satellites = append(w.satellites[:index], w.satellites[index+1:]...)
	return nil
}

// QuantityPerMin returns the combined satellite yield, linear in the
// pressurizer clock.
func (w *ResourceWell) QuantityPerMin() float64 {
	total := 0.0
	for _, s := range w.satellites {
		total += s.BaseRate()
	}
	return total * catalog.ClockFactor(w.clock)
}

// PowerDraw returns the pressurizer's draw in MW under the non-linear law.
func (w *ResourceWell) PowerDraw() float64 {
	return catalog.WellPressurizerBasePowerMW * catalog.PowerFactor(w.clock)
}

func (w *ResourceWell) isRawInput() {}
