// Package storage holds the persistence layer behind a single capability
// interface. The backing implementation is chosen once at startup from
// configuration and handed to the API layer explicitly.
package storage

import (
	"context"
	"errors"

	"github.com/jhaabhishek9/Nutrifitnes/config"
	"github.com/jhaabhishek9/Nutrifitnes/models"
)

var (
	ErrNotFound      = errors.New("storage: record not found")
	ErrUsernameTaken = errors.New("storage: username already taken")
)

type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// CreateBMIRecord is a single append-only insert. CreatedAt is stamped
	// by the store, never by the caller.
	CreateBMIRecord(ctx context.Context, record *models.BMIRecord) error
	ListBMIRecords(ctx context.Context, userID uint) ([]models.BMIRecord, error)

	DietPlans(ctx context.Context) ([]models.DietPlan, error)

	Ping(ctx context.Context) error
}

// Open picks the store for this process: Postgres when DATABASE_URL is set,
// otherwise the in-memory store used for local runs and tests.
func Open(cfg *config.Config) (Store, error) {
	if cfg.DatabaseURL == "" {
		return NewMemoryStore(), nil
	}
	return NewGormStore(cfg.DatabaseURL)
}
