package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Account is a stored registration.
type Account struct {
	ID           uuid.UUID `json:"id" yaml:"id"`
	Username     string    `json:"username" yaml:"username"`
	Mail         string    `json:"mail" yaml:"mail"`
	Website      *string   `json:"website,omitempty" yaml:"website,omitempty"`
	Phone        *string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	PasswordHash []byte    `json:"-" yaml:"-"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
}

// MemoryStore keeps accounts in memory. Usernames are unique regardless of
// case.
type MemoryStore struct {
	mu         sync.RWMutex
	accounts   map[uuid.UUID]Account
	byUsername map[string]uuid.UUID
	cost       int
	now        func() time.Time
}

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithBcryptCost sets the bcrypt cost used to hash passwords.
func WithBcryptCost(cost int) StoreOption {
	return func(s *MemoryStore) { s.cost = cost }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *MemoryStore) { s.now = now }
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{
		accounts:   make(map[uuid.UUID]Account),
		byUsername: make(map[string]uuid.UUID),
		cost:       bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a registration that already passed validation.
func (s *MemoryStore) Create(ctx context.Context, reg Registration) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return Account{}, fmt.Errorf("hash password: %w", err)
	}

	key := strings.ToLower(reg.Username)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byUsername[key]; taken {
		return Account{}, ErrUsernameTaken
	}

	acc := Account{
		ID:           uuid.New(),
		Username:     reg.Username,
		Mail:         reg.Mail,
		Website:      reg.Website,
		Phone:        reg.Phone,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	s.accounts[acc.ID] = acc
	s.byUsername[key] = acc.ID
	return acc, nil
}

// Get returns the account with the given id.
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return acc, nil
}

// Authenticate returns the account matching username and password.
func (s *MemoryStore) Authenticate(ctx context.Context, username, password string) (Account, error) {
	if err := ctx.Err(); err != nil {
		return Account{}, err
	}
	s.mu.RLock()
	id, ok := s.byUsername[strings.ToLower(username)]
	acc := s.accounts[id]
	s.mu.RUnlock()
	if !ok {
		return Account{}, ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return Account{}, ErrInvalidCredentials
	}
	if err != nil {
		return Account{}, fmt.Errorf("compare password: %w", err)
	}
	return acc, nil
}
