package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanderly-app/wanderly-api/schema"
)

const storeLogPrefix = "store"

// Error kinds. Every error returned by the store wraps exactly one of them.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = schema.ErrInvalidInput
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

var (
	ErrAttractionNotFound = fmt.Errorf("attraction %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrEmailTaken         = fmt.Errorf("email is already registered: %w", ErrConflict)
	ErrUsernameTaken      = fmt.Errorf("username is already taken: %w", ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
)

// Store is the catalog of attractions, reviews and accounts.
type Store interface {
	Attraction
	Review
	Account
	Favorite
	Seeder
}

// MemoryStore keeps every collection in process memory.
//
// Each collection has its own lock. Operations that need more than one take
// them in the order attractions, reviews, accounts.
type MemoryStore struct {
	attractionMu    sync.RWMutex
	attractions     map[string]schema.Attraction
	attractionOrder []string

	reviewMu sync.RWMutex
	reviews  []schema.Review

	accountMu sync.RWMutex
	accounts  map[string]schema.Account

	dataset    Dataset
	bcryptCost int
	now        func() time.Time
	newID      func() string
}

type Option func(*MemoryStore)

// WithBcryptCost sets the cost used to hash new passwords.
func WithBcryptCost(cost int) Option {
	return func(m *MemoryStore) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			m.bcryptCost = cost
		}
	}
}

// WithDataset replaces the embedded seed data.
func WithDataset(d Dataset) Option {
	return func(m *MemoryStore) {
		m.dataset = d
	}
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *MemoryStore) {
		m.now = now
	}
}

// NewMemoryStore returns an empty store. Call Seed or Reseed to load data.
func NewMemoryStore(opts ...Option) *MemoryStore {
	m := &MemoryStore{
		attractions: make(map[string]schema.Attraction),
		reviews:     make([]schema.Review, 0),
		accounts:    make(map[string]schema.Account),
		bcryptCost:  bcrypt.DefaultCost,
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}

	log.WithFields(log.Fields{
		"prefix":      storeLogPrefix,
		"bcrypt_cost": m.bcryptCost,
	}).Debug("memory store created")
	return m
}

// Reset drops every entity.
func (m *MemoryStore) Reset() {
	m.attractionMu.Lock()
	defer m.attractionMu.Unlock()
	m.reviewMu.Lock()
	defer m.reviewMu.Unlock()
	m.accountMu.Lock()
	defer m.accountMu.Unlock()

	m.attractions = make(map[string]schema.Attraction)
	m.attractionOrder = nil
	m.reviews = make([]schema.Review, 0)
	m.accounts = make(map[string]schema.Account)
}
