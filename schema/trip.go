package schema

type TransportMode string

const (
	TransportMetro TransportMode = "metro"
	TransportBus   TransportMode = "bus"
	TransportAuto  TransportMode = "auto"
	TransportCab   TransportMode = "cab"
	TransportCar   TransportMode = "car"
)

var TransportModes = []TransportMode{TransportMetro, TransportBus, TransportAuto, TransportCab, TransportCar}

func (m TransportMode) Valid() bool {
	for _, v := range TransportModes {
		if m == v {
			return true
		}
	}
	return false
}

// TripEstimateInput selects attractions for a planning estimate. Days may be
// given directly or derived from StartDate/EndDate (YYYY-MM-DD).
type TripEstimateInput struct {
	AttractionIDs []string      `json:"attractionIds" validate:"required,min=1,dive,required"`
	Travelers     int           `json:"travelers" validate:"gte=1"`
	Days          *int          `json:"days" validate:"omitempty,gte=0"`
	StartDate     string        `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string        `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	TransportMode TransportMode `json:"transportMode" validate:"omitempty,transport"`
}

type CheckoutInput struct {
	AttractionIDs []string `json:"attractionIds" validate:"required,min=1,dive,required"`
	Quantity      int      `json:"quantity" validate:"gte=1"`
}
