package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jhaabhishek9/Nutrifitnes/bmi"
	"github.com/jhaabhishek9/Nutrifitnes/models"
	"github.com/jhaabhishek9/Nutrifitnes/storage"
)

func TestBMIServiceValidation(t *testing.T) {
	svc := NewBMIService(storage.NewMemoryStore())

	tests := []struct {
		name string
		in   BMIInput
	}{
		{"missing height", BMIInput{Weight: 70}},
		{"height below minimum", BMIInput{HeightFeet: 0.5, Weight: 70}},
		{"inches too large", BMIInput{HeightFeet: 5, HeightInches: 12, Weight: 70}},
		{"negative inches", BMIInput{HeightFeet: 5, HeightInches: -1, Weight: 70}},
		{"missing weight", BMIInput{HeightFeet: 5, HeightInches: 10}},
		{"negative weight", BMIInput{HeightFeet: 5, HeightInches: 10, Weight: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Calculate(tt.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Calculate(%+v) error = %v, want ValidationError", tt.in, err)
			}
		})
	}
}

func TestBMIServiceCalculate(t *testing.T) {
	svc := NewBMIService(storage.NewMemoryStore())

	res, err := svc.Calculate(BMIInput{HeightFeet: 5, HeightInches: 10, Weight: 70})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if res.Category != bmi.Normal {
		t.Errorf("Category = %q, want Normal", res.Category)
	}
	if got := res.DisplayBMI(); got != "22.1" {
		t.Errorf("DisplayBMI() = %q, want 22.1", got)
	}
}

func TestBMIServiceRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewBMIService(store)
	ctx := context.Background()

	in := BMIInput{HeightFeet: 5, HeightInches: 10, Weight: 70}
	res, err := svc.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	rec, err := svc.Record(ctx, 42, in, res)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.UserID != 42 {
		t.Errorf("record userId = %d, want 42", rec.UserID)
	}
	if rec.Category != "Normal" {
		t.Errorf("record category = %q, want Normal", rec.Category)
	}

	records, err := svc.History(ctx, 42)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("History returned %d records, want 1", len(records))
	}
}

type failingStore struct {
	storage.Store
}

func (failingStore) CreateBMIRecord(context.Context, *models.BMIRecord) error {
	return errors.New("insert failed")
}

func TestBMIServiceRecordFailureKeepsResult(t *testing.T) {
	svc := NewBMIService(failingStore{storage.NewMemoryStore()})

	in := BMIInput{HeightFeet: 5, HeightInches: 10, Weight: 70}
	res, err := svc.Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	if _, err := svc.Record(context.Background(), 1, in, res); err == nil {
		t.Fatal("Record with failing store returned nil error")
	}

	// The computed result is independent of the failed write.
	if res.DisplayBMI() != "22.1" || res.Category != bmi.Normal {
		t.Errorf("computed result lost after save failure: %+v", res)
	}
}
