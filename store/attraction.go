package store

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/wanderly-app/wanderly-api/schema"
)

type Attraction interface {
	CreateAttraction(input schema.AttractionInput) (schema.Attraction, error)
	GetAttraction(id string) (schema.Attraction, error)
	ListAttractions(filter AttractionFilter) ([]schema.Attraction, error)
	UpdateAttraction(id string, patch schema.AttractionPatch) (schema.Attraction, error)
	DeleteAttraction(id string) error
}

// AttractionFilter narrows ListAttractions. Zero values match everything.
type AttractionFilter struct {
	// Query matches name, description or address, case-insensitively.
	Query string
	// Place matches the address or the name, case-insensitively.
	Place      string
	Categories []schema.Category
	Price      schema.PriceTier
	MinRating  float64
}

func (f AttractionFilter) match(a schema.Attraction) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !containsFold(a.Name, q) && !containsFold(a.Description, q) && !containsFold(a.Location.Address, q) {
			return false
		}
	}

	if p := strings.ToLower(strings.TrimSpace(f.Place)); p != "" {
		if !containsFold(a.Location.Address, p) && !containsFold(a.Name, p) {
			return false
		}
	}

	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if a.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Price != "" && a.Price != f.Price {
		return false
	}

	return a.AverageRating >= f.MinRating
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}

func (m *MemoryStore) CreateAttraction(input schema.AttractionInput) (schema.Attraction, error) {
	if err := schema.Validate(input); err != nil {
		return schema.Attraction{}, err
	}

	a := schema.Attraction{
		ID:          m.newID(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Location:    *input.Location,
		Images:      input.Images,
		Price:       input.Price,
		Distance:    input.Distance,
		Hours:       input.Hours,
		Phone:       input.Phone,
		Website:     input.Website,
		Amenities:   input.Amenities,
		TravelInfo:  input.TravelInfo,
		CreatedAt:   m.now().UTC(),
	}.Clone()

	m.attractionMu.Lock()
	m.attractions[a.ID] = a
	m.attractionOrder = append(m.attractionOrder, a.ID)
	m.attractionMu.Unlock()

	log.WithFields(log.Fields{
		"prefix":        storeLogPrefix,
		"attraction_id": a.ID,
		"name":          a.Name,
	}).Debug("attraction created")

	return a.Clone(), nil
}

func (m *MemoryStore) GetAttraction(id string) (schema.Attraction, error) {
	m.attractionMu.RLock()
	defer m.attractionMu.RUnlock()

	a, ok := m.attractions[id]
	if !ok {
		return schema.Attraction{}, ErrAttractionNotFound
	}
	return a.Clone(), nil
}

// ListAttractions returns the matching attractions in creation order.
func (m *MemoryStore) ListAttractions(filter AttractionFilter) ([]schema.Attraction, error) {
	m.attractionMu.RLock()
	defer m.attractionMu.RUnlock()

	result := make([]schema.Attraction, 0, len(m.attractionOrder))
	for _, id := range m.attractionOrder {
		a := m.attractions[id]
		if filter.match(a) {
			result = append(result, a.Clone())
		}
	}
	return result, nil
}

func (m *MemoryStore) UpdateAttraction(id string, patch schema.AttractionPatch) (schema.Attraction, error) {
	if err := schema.Validate(patch); err != nil {
		return schema.Attraction{}, err
	}

	m.attractionMu.Lock()
	defer m.attractionMu.Unlock()

	current, ok := m.attractions[id]
	if !ok {
		return schema.Attraction{}, ErrAttractionNotFound
	}

	// rating fields belong to the recompute and are carried over untouched
	updated := patch.Apply(current)
	updated.ID = current.ID
	updated.AverageRating = current.AverageRating
	updated.ReviewCount = current.ReviewCount
	updated.CreatedAt = current.CreatedAt
	m.attractions[id] = updated

	log.WithFields(log.Fields{
		"prefix":        storeLogPrefix,
		"attraction_id": id,
	}).Debug("attraction updated")

	return updated.Clone(), nil
}

// DeleteAttraction removes the attraction only. Its reviews and any
// favorites pointing at it are left in place.
func (m *MemoryStore) DeleteAttraction(id string) error {
	m.attractionMu.Lock()
	defer m.attractionMu.Unlock()

	if _, ok := m.attractions[id]; !ok {
		return ErrAttractionNotFound
	}
	delete(m.attractions, id)

	for i, v := range m.attractionOrder {
		if v == id {
			m.attractionOrder = append(m.attractionOrder[:i:i], m.attractionOrder[i+1:]...)
			break
		}
	}

	log.WithFields(log.Fields{
		"prefix":        storeLogPrefix,
		"attraction_id": id,
	}).Info("attraction deleted")
	return nil
}
