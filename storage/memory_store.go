package storage

import (
	"context"
	"sync"
	"time"

	"github.com/jhaabhishek9/Nutrifitnes/models"
)

// MemoryStore keeps everything in process memory. Used when no DATABASE_URL
// is configured and as the backing store in handler tests.
type MemoryStore struct {
	mu         sync.Mutex
	users      map[uint]models.User
	byUsername map[string]uint
	records    []models.BMIRecord
	plans      []models.DietPlan

	nextUserID   uint
	nextRecordID uint
}

func NewMemoryStore() *MemoryStore {
	plans := models.DefaultDietPlans()
	for i := range plans {
		plans[i].ID = uint(i + 1)
	}
	return &MemoryStore{
		users:        make(map[uint]models.User),
		byUsername:   make(map[string]uint),
		plans:        plans,
		nextUserID:   1,
		nextRecordID: 1,
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[user.Username]; taken {
		return ErrUsernameTaken
	}

	user.ID = s.nextUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.nextUserID++

	s.users[user.ID] = *user
	s.byUsername[user.Username] = user.ID
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, ErrNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (s *MemoryStore) CreateBMIRecord(_ context.Context, record *models.BMIRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextRecordID
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	s.nextRecordID++

	s.records = append(s.records, *record)
	return nil
}

func (s *MemoryStore) ListBMIRecords(_ context.Context, userID uint) ([]models.BMIRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Newest first.
	var out []models.BMIRecord
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].UserID == userID {
			out = append(out, s.records[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) DietPlans(_ context.Context) ([]models.DietPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.DietPlan, len(s.plans))
	copy(out, s.plans)
	return out, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
