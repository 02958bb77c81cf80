package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/wanderly-app/wanderly-api/schema"
)

type Favorite interface {
	AddFavorite(userID, attractionID string) ([]string, error)
	RemoveFavorite(userID, attractionID string) ([]string, error)
	FavoriteIDs(userID string) ([]string, error)
	FavoritesByUser(userID string) ([]schema.Attraction, error)
}

// AddFavorite appends attractionID to the user's favorites unless it is
// already there, and returns the resulting list.
func (m *MemoryStore) AddFavorite(userID, attractionID string) ([]string, error) {
	m.attractionMu.RLock()
	defer m.attractionMu.RUnlock()
	m.accountMu.Lock()
	defer m.accountMu.Unlock()

	a, ok := m.accounts[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	if _, ok := m.attractions[attractionID]; !ok {
		return nil, ErrAttractionNotFound
	}

	for _, id := range a.Favorites {
		if id == attractionID {
			return cloneIDs(a.Favorites), nil
		}
	}

	a.Favorites = append(cloneIDs(a.Favorites), attractionID)
	m.accounts[userID] = a

	log.WithFields(log.Fields{
		"prefix":        storeLogPrefix,
		"account_id":    userID,
		"attraction_id": attractionID,
	}).Debug("favorite added")

	return cloneIDs(a.Favorites), nil
}

// RemoveFavorite drops attractionID from the user's favorites. Removing an
// id that is not there is not an error.
func (m *MemoryStore) RemoveFavorite(userID, attractionID string) ([]string, error) {
	m.accountMu.Lock()
	defer m.accountMu.Unlock()

	a, ok := m.accounts[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	kept := make([]string, 0, len(a.Favorites))
	for _, id := range a.Favorites {
		if id != attractionID {
			kept = append(kept, id)
		}
	}
	a.Favorites = kept
	m.accounts[userID] = a

	return cloneIDs(kept), nil
}

func (m *MemoryStore) FavoriteIDs(userID string) ([]string, error) {
	m.accountMu.RLock()
	defer m.accountMu.RUnlock()

	a, ok := m.accounts[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneIDs(a.Favorites), nil
}

// FavoritesByUser resolves the favorites in order. Ids whose attraction has
// been deleted are skipped.
func (m *MemoryStore) FavoritesByUser(userID string) ([]schema.Attraction, error) {
	m.attractionMu.RLock()
	defer m.attractionMu.RUnlock()
	m.accountMu.RLock()
	defer m.accountMu.RUnlock()

	a, ok := m.accounts[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	result := make([]schema.Attraction, 0, len(a.Favorites))
	for _, id := range a.Favorites {
		if attraction, ok := m.attractions[id]; ok {
			result = append(result, attraction.Clone())
		}
	}
	return result, nil
}

func cloneIDs(ids []string) []string {
	c := make([]string, len(ids))
	copy(c, ids)
	return c
}
