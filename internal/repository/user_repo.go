package repository

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/lexhaven/lexai/internal/domain"
)

const userKey = "lex-ai-users"

// storedUser keeps the password hash alongside the public user record.
type storedUser struct {
	User         domain.User `json:"user"`
	PasswordHash string      `json:"password_hash"`
}

// UserRepository is the account registry. Unlike case and request data it
// is not owner-scoped: one JSON payload maps email to account.
type UserRepository struct {
	mu  sync.Mutex
	db  *DB
	ids IDGenerator
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *DB, ids IDGenerator) *UserRepository {
	return &UserRepository{db: db, ids: ids}
}

// Create registers a new account. Returns domain.ErrEmailTaken when the
// email is already registered.
func (r *UserRepository) Create(email, passwordHash, role string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return domain.User{}, err
	}

	email = strings.TrimSpace(email)
	if _, exists := users[email]; exists {
		return domain.User{}, domain.ErrEmailTaken
	}

	user := domain.User{
		ID:        r.ids.NewID("user"),
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	users[email] = storedUser{User: user, PasswordHash: passwordHash}

	if err := r.save(users); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// GetByEmail returns the account and password hash for email, if any.
func (r *UserRepository) GetByEmail(email string) (domain.User, string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return domain.User{}, "", false, err
	}

	su, ok := users[strings.TrimSpace(email)]
	if !ok {
		return domain.User{}, "", false, nil
	}
	return su.User, su.PasswordHash, true, nil
}

func (r *UserRepository) load() (map[string]storedUser, error) {
	payload, found, err := r.db.Get(userKey)
	if err != nil {
		return nil, err
	}
	users := make(map[string]storedUser)
	if !found {
		return users, nil
	}
	if err := json.Unmarshal([]byte(payload), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) save(users map[string]storedUser) error {
	payload, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.db.Put(userKey, string(payload))
}
