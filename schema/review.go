package schema

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is immutable once created. UserID and AttractionID are weak
// references and are not checked for existence.
type Review struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	AttractionID string    `json:"attractionId"`
	Rating       float64   `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReviewInput struct {
	AttractionID string  `json:"attractionId" validate:"required"`
	Rating       float64 `json:"rating" validate:"gte=1,lte=5"`
	Comment      string  `json:"comment" validate:"required"`
}
