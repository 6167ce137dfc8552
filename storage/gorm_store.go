package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jhaabhishek9/Nutrifitnes/models"
)

type GormStore struct {
	db *gorm.DB
}

// NewGormStore connects to Postgres, runs migrations and seeds the diet-plan
// catalog when the table is empty.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.BMIRecord{},
		&models.DietPlan{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	s := &GormStore{db: db}
	if err := s.seedDietPlans(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GormStore) seedDietPlans() error {
	var count int64
	if err := s.db.Model(&models.DietPlan{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count diet plans: %w", err)
	}
	if count > 0 {
		return nil
	}
	plans := models.DefaultDietPlans()
	if err := s.db.Create(&plans).Error; err != nil {
		return fmt.Errorf("seed diet plans: %w", err)
	}
	return nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	var existing models.User
	err := s.db.WithContext(ctx).Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateBMIRecord(ctx context.Context, record *models.BMIRecord) error {
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *GormStore) ListBMIRecords(ctx context.Context, userID uint) ([]models.BMIRecord, error) {
	var records []models.BMIRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormStore) DietPlans(ctx context.Context) ([]models.DietPlan, error) {
	var plans []models.DietPlan
	if err := s.db.WithContext(ctx).Order("id").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
