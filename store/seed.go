package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/wanderly-app/wanderly-api/schema"
)

const seedLogPrefix = "seed"

//go:embed data/attractions.json
var defaultDataset []byte

type Seeder interface {
	Seed(d Dataset) error
	Reset()
	Reseed() error
}

// Dataset is the content loaded into an empty store.
type Dataset struct {
	Admin       *schema.AccountInput     `json:"-"`
	Attractions []schema.AttractionInput `json:"attractions"`
	Reviews     []SeedReview             `json:"reviews"`
}

// SeedReview is written by the admin account. Attraction is an index into
// Dataset.Attractions.
type SeedReview struct {
	Attraction int     `json:"attraction"`
	Rating     float64 `json:"rating"`
	Comment    string  `json:"comment"`
}

// LoadDataset reads a dataset from path, or the embedded one when path is empty.
func LoadDataset(path string) (Dataset, error) {
	data := defaultDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Dataset{}, err
		}
		data = b
	}

	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return Dataset{}, fmt.Errorf("fail to parse seed dataset: %w", err)
	}
	return d, nil
}

// Seed adds the dataset to the store. Seed reviews go through CreateReview so
// the ratings of seeded attractions come out of the same recompute as any
// other review.
func (m *MemoryStore) Seed(d Dataset) error {
	var authorID string
	if d.Admin != nil {
		admin, err := m.createAccount(*d.Admin, schema.RoleAdmin)
		if err != nil {
			return fmt.Errorf("fail to create admin account: %w", err)
		}
		authorID = admin.ID
	}

	ids := make([]string, 0, len(d.Attractions))
	for i, input := range d.Attractions {
		a, err := m.CreateAttraction(input)
		if err != nil {
			return fmt.Errorf("fail to seed attraction %d (%s): %w", i, input.Name, err)
		}
		ids = append(ids, a.ID)
	}

	for i, r := range d.Reviews {
		if r.Attraction < 0 || r.Attraction >= len(ids) {
			return fmt.Errorf("seed review %d points at attraction %d of %d", i, r.Attraction, len(ids))
		}
		if authorID == "" {
			log.WithField("prefix", seedLogPrefix).Warn("no admin account, skip seed reviews")
			break
		}
		if _, err := m.CreateReview(authorID, schema.ReviewInput{
			AttractionID: ids[r.Attraction],
			Rating:       r.Rating,
			Comment:      r.Comment,
		}); err != nil {
			return fmt.Errorf("fail to seed review %d: %w", i, err)
		}
	}

	log.WithFields(log.Fields{
		"prefix":      seedLogPrefix,
		"attractions": len(ids),
		"reviews":     len(d.Reviews),
	}).Info("dataset loaded")
	return nil
}

// Reseed clears the store and loads the dataset it was built with.
func (m *MemoryStore) Reseed() error {
	m.Reset()
	return m.Seed(m.dataset)
}
