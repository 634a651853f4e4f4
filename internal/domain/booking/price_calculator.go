package booking

type PriceCalculator interface {
	CalculatePrice(pro ProfessionalSpec, schedule Schedule) (Money, error)
}

// HourlyRateCalculator prorates the professional's published hourly rate,
// rounding half up to the nearest minor unit.
type HourlyRateCalculator struct{}

func NewHourlyRateCalculator() *HourlyRateCalculator {
	return &HourlyRateCalculator{}
}

func (pc *HourlyRateCalculator) CalculatePrice(pro ProfessionalSpec, schedule Schedule) (Money, error) {
	minutes := int64(schedule.DurationMinutes())
	cents := (pro.HourlyRateCents*minutes + 30) / 60
	return NewMoney(cents, pro.Currency)
}
