package services

import (
	"context"
	"fmt"

	"github.com/jhaabhishek9/Nutrifitnes/bmi"
	"github.com/jhaabhishek9/Nutrifitnes/models"
	"github.com/jhaabhishek9/Nutrifitnes/storage"
)

// ValidationError rejects a calculation before the formula runs.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type BMIService struct {
	store storage.Store
}

func NewBMIService(store storage.Store) *BMIService {
	return &BMIService{store: store}
}

type BMIInput struct {
	HeightFeet   float64 `json:"heightFeet"`
	HeightInches float64 `json:"heightInches"`
	Weight       float64 `json:"weight"`
}

func (in BMIInput) validate() error {
	if in.HeightFeet < 1 {
		return &ValidationError{Message: "heightFeet is required and must be at least 1"}
	}
	if in.HeightInches < 0 || in.HeightInches > 11 {
		return &ValidationError{Message: "heightInches must be between 0 and 11"}
	}
	if in.Weight <= 0 {
		return &ValidationError{Message: "weight is required and must be greater than zero"}
	}
	return nil
}

// Calculate validates the input and runs the engine. Persistence is a
// separate step so a storage failure never loses the computed result.
func (s *BMIService) Calculate(in BMIInput) (bmi.Result, error) {
	if err := in.validate(); err != nil {
		return bmi.Result{}, err
	}

	res, err := bmi.Compute(in.HeightFeet, in.HeightInches, in.Weight)
	if err != nil {
		// Unreachable with heightFeet >= 1, kept so the engine's
		// degenerate-height guard surfaces as a validation failure.
		return bmi.Result{}, &ValidationError{Message: "height must be greater than zero"}
	}
	return res, nil
}

// Record appends one history row for the user. UserID comes from the
// authenticated session, never from request content.
func (s *BMIService) Record(ctx context.Context, userID uint, in BMIInput, res bmi.Result) (*models.BMIRecord, error) {
	record := &models.BMIRecord{
		UserID:   userID,
		Height:   res.HeightMeters,
		Weight:   in.Weight,
		BMIValue: res.BMI,
		Category: string(res.Category),
	}
	if err := s.store.CreateBMIRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("save bmi record: %w", err)
	}
	return record, nil
}

func (s *BMIService) History(ctx context.Context, userID uint) ([]models.BMIRecord, error) {
	return s.store.ListBMIRecords(ctx, userID)
}
