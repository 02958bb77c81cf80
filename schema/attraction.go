package schema

import (
	"time"
)

type Category string

const (
	CategoryNature    Category = "nature"
	CategoryMuseum    Category = "museum"
	CategoryAdventure Category = "adventure"
	CategoryDining    Category = "dining"
	CategoryHistoric  Category = "historic"
	CategoryShopping  Category = "shopping"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryNature, CategoryMuseum, CategoryAdventure,
	CategoryDining, CategoryHistoric, CategoryShopping,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type PriceTier string

const (
	PriceFree      PriceTier = "free"
	PriceBudget    PriceTier = "$"
	PriceModerate  PriceTier = "$$"
	PriceExpensive PriceTier = "$$$"
)

var PriceTiers = []PriceTier{PriceFree, PriceBudget, PriceModerate, PriceExpensive}

func (p PriceTier) Valid() bool {
	for _, v := range PriceTiers {
		if p == v {
			return true
		}
	}
	return false
}

type TravelOption struct {
	Mode         string   `json:"mode"`
	Duration     string   `json:"duration"`
	Cost         string   `json:"cost"`
	Recommended  bool     `json:"recommended,omitempty"`
	Pros         string   `json:"pros,omitempty"`
	Cons         string   `json:"cons,omitempty"`
	BookingLinks []string `json:"bookingLinks,omitempty"`
	Companies    []string `json:"companies,omitempty"`
	Available    *bool    `json:"available,omitempty"`
	Note         string   `json:"note,omitempty"`
}

type BestTravelOption struct {
	Mode          string `json:"mode"`
	Reason        string `json:"reason"`
	EstimatedCost string `json:"estimatedCost,omitempty"`
}

// TravelInfo describes how to reach an attraction from a reference point.
type TravelInfo struct {
	FromLocation string           `json:"fromLocation"`
	Options      []TravelOption   `json:"options"`
	BestOption   BestTravelOption `json:"bestOption"`
}

func (t *TravelInfo) clone() *TravelInfo {
	if t == nil {
		return nil
	}
	c := *t
	c.Options = make([]TravelOption, len(t.Options))
	for i, o := range t.Options {
		o.BookingLinks = cloneStrings(o.BookingLinks)
		o.Companies = cloneStrings(o.Companies)
		c.Options[i] = o
	}
	return &c
}

// Attraction is a catalogued point of interest.
//
// AverageRating and ReviewCount are derived from the review set and are only
// written by the store's rating recompute. Distance is a legacy, informational
// value carried over from the seed data; real distances come from the nearby query.
type Attraction struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Category      Category    `json:"category"`
	Description   string      `json:"description"`
	Location      Location    `json:"location"`
	Images        []string    `json:"images"`
	Price         PriceTier   `json:"price"`
	Distance      float64     `json:"distance"`
	Hours         *string     `json:"hours"`
	Phone         *string     `json:"phone"`
	Website       *string     `json:"website"`
	Amenities     []string    `json:"amenities"`
	TravelInfo    *TravelInfo `json:"travelInfo"`
	AverageRating float64     `json:"averageRating"`
	ReviewCount   int         `json:"reviewCount"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Coordinate satisfies geo.Located.
func (a Attraction) Coordinate() Coordinate {
	return a.Location.Coordinate()
}

// Clone returns a deep copy so callers never share slices with the store.
func (a Attraction) Clone() Attraction {
	c := a
	c.Images = cloneStrings(a.Images)
	c.Amenities = cloneStrings(a.Amenities)
	c.Hours = cloneStringPtr(a.Hours)
	c.Phone = cloneStringPtr(a.Phone)
	c.Website = cloneStringPtr(a.Website)
	c.TravelInfo = a.TravelInfo.clone()
	return c
}

// AttractionInput is the admin create contract.
type AttractionInput struct {
	Name        string      `json:"name" validate:"required"`
	Category    Category    `json:"category" validate:"required,category"`
	Description string      `json:"description" validate:"required"`
	Location    *Location   `json:"location" validate:"required"`
	Images      []string    `json:"images" validate:"omitempty,dive,required"`
	Price       PriceTier   `json:"price" validate:"required,pricetier"`
	Distance    float64     `json:"distance" validate:"gte=0"`
	Hours       *string     `json:"hours"`
	Phone       *string     `json:"phone"`
	Website     *string     `json:"website"`
	Amenities   []string    `json:"amenities"`
	TravelInfo  *TravelInfo `json:"travelInfo"`
}

// AttractionPatch is the admin update contract. A nil field keeps the stored
// value; a non-nil slice replaces the stored slice wholesale.
type AttractionPatch struct {
	Name        *string     `json:"name" validate:"omitempty,min=1"`
	Category    *Category   `json:"category" validate:"omitempty,category"`
	Description *string     `json:"description" validate:"omitempty,min=1"`
	Location    *Location   `json:"location"`
	Images      []string    `json:"images" validate:"omitempty,dive,required"`
	Price       *PriceTier  `json:"price" validate:"omitempty,pricetier"`
	Distance    *float64    `json:"distance" validate:"omitempty,gte=0"`
	Hours       *string     `json:"hours"`
	Phone       *string     `json:"phone"`
	Website     *string     `json:"website"`
	Amenities   []string    `json:"amenities"`
	TravelInfo  *TravelInfo `json:"travelInfo"`
}

// Apply merges the patch into a copy of a and returns it.
func (p AttractionPatch) Apply(a Attraction) Attraction {
	out := a.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Images != nil {
		out.Images = cloneStrings(p.Images)
	}
	if p.Price != nil {
		out.Price = *p.Price
	}
	if p.Distance != nil {
		out.Distance = *p.Distance
	}
	if p.Hours != nil {
		out.Hours = cloneStringPtr(p.Hours)
	}
	if p.Phone != nil {
		out.Phone = cloneStringPtr(p.Phone)
	}
	if p.Website != nil {
		out.Website = cloneStringPtr(p.Website)
	}
	if p.Amenities != nil {
		out.Amenities = cloneStrings(p.Amenities)
	}
	if p.TravelInfo != nil {
		out.TravelInfo = p.TravelInfo.clone()
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	c := make([]string, len(s))
	copy(c, s)
	return c
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
