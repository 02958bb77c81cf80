package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/wanderly-app/wanderly-api/schema"
	"github.com/wanderly-app/wanderly-api/score"
)

type Review interface {
	CreateReview(userID string, input schema.ReviewInput) (schema.Review, error)
	ReviewsByAttraction(attractionID string) ([]schema.Review, error)
	ReviewsByUser(userID string) ([]schema.Review, error)
	RecomputeRating(attractionID string)
}

// CreateReview stores the review and refreshes the attraction's rating
// before any other writer can touch either collection. The user and
// attraction ids are not checked.
func (m *MemoryStore) CreateReview(userID string, input schema.ReviewInput) (schema.Review, error) {
	if err := schema.Validate(input); err != nil {
		return schema.Review{}, err
	}
	if userID == "" {
		return schema.Review{}, schema.NewValidationError("userId", "is required")
	}

	r := schema.Review{
		ID:           m.newID(),
		UserID:       userID,
		AttractionID: input.AttractionID,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CreatedAt:    m.now().UTC(),
	}

	m.attractionMu.Lock()
	defer m.attractionMu.Unlock()
	m.reviewMu.Lock()
	defer m.reviewMu.Unlock()

	m.reviews = append(m.reviews, r)
	m.recomputeLocked(r.AttractionID)

	log.WithFields(log.Fields{
		"prefix":        storeLogPrefix,
		"review_id":     r.ID,
		"attraction_id": r.AttractionID,
		"rating":        r.Rating,
	}).Debug("review created")

	return r, nil
}

func (m *MemoryStore) ReviewsByAttraction(attractionID string) ([]schema.Review, error) {
	return m.reviewsWhere(func(r schema.Review) bool { return r.AttractionID == attractionID }), nil
}

func (m *MemoryStore) ReviewsByUser(userID string) ([]schema.Review, error) {
	return m.reviewsWhere(func(r schema.Review) bool { return r.UserID == userID }), nil
}

func (m *MemoryStore) reviewsWhere(keep func(schema.Review) bool) []schema.Review {
	m.reviewMu.RLock()
	defer m.reviewMu.RUnlock()

	result := make([]schema.Review, 0)
	for _, r := range m.reviews {
		if keep(r) {
			result = append(result, r)
		}
	}
	return result
}

// RecomputeRating rebuilds averageRating and reviewCount from the current
// review set. It does nothing when the attraction does not exist.
func (m *MemoryStore) RecomputeRating(attractionID string) {
	m.attractionMu.Lock()
	defer m.attractionMu.Unlock()
	m.reviewMu.RLock()
	defer m.reviewMu.RUnlock()

	m.recomputeLocked(attractionID)
}

// recomputeLocked expects the attraction write lock and at least the review
// read lock to be held.
func (m *MemoryStore) recomputeLocked(attractionID string) {
	a, ok := m.attractions[attractionID]
	if !ok {
		log.WithFields(log.Fields{
			"prefix":        storeLogPrefix,
			"attraction_id": attractionID,
		}).Debug("skip rating recompute for missing attraction")
		return
	}

	ratings := make([]float64, 0)
	for _, r := range m.reviews {
		if r.AttractionID == attractionID {
			ratings = append(ratings, r.Rating)
		}
	}

	a.AverageRating, a.ReviewCount = score.AverageRating(ratings)
	m.attractions[attractionID] = a
}
