package store

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/wanderly-app/wanderly-api/schema"
)

type Account interface {
	CreateAccount(input schema.AccountInput) (schema.Account, error)
	GetAccount(id string) (schema.Account, error)
	GetAccountByEmail(email string) (schema.Account, error)
	Authenticate(credentials schema.Credentials) (schema.Account, error)
}

// CreateAccount registers a regular user. Username and email are unique,
// compared case-insensitively.
func (m *MemoryStore) CreateAccount(input schema.AccountInput) (schema.Account, error) {
	return m.createAccount(input, schema.RoleUser)
}

func (m *MemoryStore) createAccount(input schema.AccountInput, role schema.Role) (schema.Account, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = normalizeEmail(input.Email)
	if err := schema.Validate(input); err != nil {
		return schema.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), m.bcryptCost)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": storeLogPrefix,
			"error":  err,
		}).Error("fail to hash password")
		return schema.Account{}, err
	}

	m.accountMu.Lock()
	defer m.accountMu.Unlock()

	for _, a := range m.accounts {
		if a.Email == input.Email {
			return schema.Account{}, ErrEmailTaken
		}
		if strings.EqualFold(a.Username, input.Username) {
			return schema.Account{}, ErrUsernameTaken
		}
	}

	account := schema.Account{
		ID:           m.newID(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Favorites:    []string{},
		CreatedAt:    m.now().UTC(),
	}
	m.accounts[account.ID] = account

	log.WithFields(log.Fields{
		"prefix":     storeLogPrefix,
		"account_id": account.ID,
		"role":       role,
	}).Info("account created")

	return account.Clone(), nil
}

func (m *MemoryStore) GetAccount(id string) (schema.Account, error) {
	m.accountMu.RLock()
	defer m.accountMu.RUnlock()

	a, ok := m.accounts[id]
	if !ok {
		return schema.Account{}, ErrUserNotFound
	}
	return a.Clone(), nil
}

func (m *MemoryStore) GetAccountByEmail(email string) (schema.Account, error) {
	email = normalizeEmail(email)

	m.accountMu.RLock()
	defer m.accountMu.RUnlock()

	for _, a := range m.accounts {
		if a.Email == email {
			return a.Clone(), nil
		}
	}
	return schema.Account{}, ErrUserNotFound
}

// Authenticate returns the account matching the credentials. An unknown
// email and a wrong password give the same error.
func (m *MemoryStore) Authenticate(credentials schema.Credentials) (schema.Account, error) {
	if err := schema.Validate(credentials); err != nil {
		return schema.Account{}, err
	}

	a, err := m.GetAccountByEmail(credentials.Email)
	if err != nil {
		return schema.Account{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(credentials.Password)); err != nil {
		log.WithFields(log.Fields{
			"prefix":     storeLogPrefix,
			"account_id": a.ID,
		}).Warn("password mismatch")
		return schema.Account{}, ErrInvalidCredentials
	}
	return a, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
