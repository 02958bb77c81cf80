package planner

import (
	"github.com/wanderly-app/wanderly-api/schema"
)

const (
	TaxRate        = 0.18
	ServiceFeeRate = 0.05
)

// checkoutPrices is the booking price list. It differs from the planning
// one and the two are kept apart.
var checkoutPrices = map[schema.PriceTier]float64{
	schema.PriceFree:      0,
	schema.PriceBudget:    300,
	schema.PriceModerate:  750,
	schema.PriceExpensive: 1500,
}

type CheckoutLine struct {
	AttractionID string           `json:"attractionId"`
	Name         string           `json:"name"`
	Price        schema.PriceTier `json:"price"`
	UnitPrice    float64          `json:"unitPrice"`
	Quantity     int              `json:"quantity"`
	Amount       float64          `json:"amount"`
}

type CheckoutSummary struct {
	Items      []CheckoutLine `json:"items"`
	Subtotal   float64        `json:"subtotal"`
	Tax        float64        `json:"tax"`
	ServiceFee float64        `json:"serviceFee"`
	Total      float64        `json:"total"`
}

// CheckoutPrice returns the booking price of one ticket, zero for an unknown tier.
func CheckoutPrice(tier schema.PriceTier) float64 {
	return checkoutPrices[tier]
}

// Checkout books quantity tickets for every selected attraction.
func Checkout(selected []schema.Attraction, quantity int) CheckoutSummary {
	summary := CheckoutSummary{Items: make([]CheckoutLine, 0, len(selected))}
	for _, a := range selected {
		unit := CheckoutPrice(a.Price)
		line := CheckoutLine{
			AttractionID: a.ID,
			Name:         a.Name,
			Price:        a.Price,
			UnitPrice:    unit,
			Quantity:     quantity,
			Amount:       unit * float64(quantity),
		}
		summary.Items = append(summary.Items, line)
		summary.Subtotal += line.Amount
	}

	summary.Tax = summary.Subtotal * TaxRate
	summary.ServiceFee = summary.Subtotal * ServiceFeeRate
	summary.Total = summary.Subtotal + summary.Tax + summary.ServiceFee
	return summary
}
