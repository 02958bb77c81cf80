package planner

import (
	"math"
	"time"

	"github.com/wanderly-app/wanderly-api/schema"
)

// DateLayout is the format of trip start and end dates.
const DateLayout = "2006-01-02"

// planningPrices is the per-attraction cost used while planning. Anything
// that is not free, $ or $$ is billed at the top band.
var planningPrices = map[schema.PriceTier]float64{
	schema.PriceFree:     0,
	schema.PriceBudget:   200,
	schema.PriceModerate: 500,
}

const planningTopPrice = 1000

var transportMultipliers = map[schema.TransportMode]float64{
	schema.TransportMetro: 1.0,
	schema.TransportBus:   0.8,
	schema.TransportAuto:  1.5,
	schema.TransportCab:   2.5,
	schema.TransportCar:   3.0,
}

// PerDiem is the per traveler, per day allowance.
type PerDiem struct {
	Accommodation float64
	Food          float64
}

var DefaultPerDiem = PerDiem{Accommodation: 1000, Food: 500}

type Budget string

const (
	BudgetLow      Budget = "budget"
	BudgetModerate Budget = "moderate"
	BudgetLuxury   Budget = "luxury"
)

// BudgetFor places a trip total into one of the planner's budget bands:
// under 5,000, under 15,000, or above.
func BudgetFor(total float64) Budget {
	switch {
	case total < 5000:
		return BudgetLow
	case total < 15000:
		return BudgetModerate
	default:
		return BudgetLuxury
	}
}

type TripEstimate struct {
	Travelers         int                  `json:"travelers"`
	Days              int                  `json:"days"`
	TransportMode     schema.TransportMode `json:"transportMode"`
	BaseCost          float64              `json:"baseCost"`
	TransportCost     float64              `json:"transportCost"`
	AccommodationCost float64              `json:"accommodationCost"`
	FoodCost          float64              `json:"foodCost"`
	TotalCost         float64              `json:"totalCost"`
	Budget            Budget               `json:"budget"`
}

func PlanningPrice(tier schema.PriceTier) float64 {
	if p, ok := planningPrices[tier]; ok {
		return p
	}
	return planningTopPrice
}

// TransportMultiplier returns the cost factor for mode, 1.0 when unknown.
func TransportMultiplier(mode schema.TransportMode) float64 {
	if m, ok := transportMultipliers[mode]; ok {
		return m
	}
	return 1.0
}

// Estimate prices a trip over the selected attractions.
func Estimate(selected []schema.Attraction, travelers, days int, mode schema.TransportMode, perDiem PerDiem) TripEstimate {
	base := 0.0
	for _, a := range selected {
		base += PlanningPrice(a.Price)
	}

	transport := base * TransportMultiplier(mode)
	personDays := float64(travelers * days)
	accommodation := personDays * perDiem.Accommodation
	food := personDays * perDiem.Food
	total := transport + accommodation + food

	return TripEstimate{
		Travelers:         travelers,
		Days:              days,
		TransportMode:     mode,
		BaseCost:          base,
		TransportCost:     transport,
		AccommodationCost: accommodation,
		FoodCost:          food,
		TotalCost:         total,
		Budget:            BudgetFor(total),
	}
}

// TripDays counts started days between start and end. It is zero when end
// is not after start.
func TripDays(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// TripDaysBetween parses two DateLayout dates and returns TripDays.
func TripDaysBetween(start, end string) (int, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0, err
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0, err
	}
	return TripDays(s, e), nil
}
