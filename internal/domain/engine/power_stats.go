package engine

// FactoryPower is one facility's power report: generator output, production
// draw and their difference.
type FactoryPower struct {
	FactoryID     int
	FactoryName   string
	GenerationMW  float64
	ConsumptionMW float64
	BalanceMW     float64
}

// PowerStats aggregates per-facility power reports with engine-wide totals.
type PowerStats struct {
	Factories          []FactoryPower
	TotalGenerationMW  float64
	TotalConsumptionMW float64
	TotalBalanceMW     float64
}

// GlobalPowerStats derives per-factory generation, consumption and balance,
// plus engine-wide totals, in factory creation order. Consumption follows
// Factory.TotalPowerConsumption: production lines only.
func (e *Engine) GlobalPowerStats() PowerStats {
	stats := PowerStats{Factories: make([]FactoryPower, 0, len(e.factoryOrder))}

	for _, id := range e.factoryOrder {
		f := e.factories[id]
		generation := f.TotalGeneration()
		consumption := f.TotalPowerConsumption()

		stats.Factories = append(stats.Factories, FactoryPower{
			FactoryID:     f.ID(),
			FactoryName:   f.Name(),
			GenerationMW:  generation,
			ConsumptionMW: consumption,
			BalanceMW:     generation - consumption,
		})
		stats.TotalGenerationMW += generation
		stats.TotalConsumptionMW += consumption
	}

	stats.TotalBalanceMW = stats.TotalGenerationMW - stats.TotalConsumptionMW
	return stats
}
