package services

import (
	"context"
	"errors"
	"time"

	"nutritrack/models"

	"gorm.io/gorm"
)

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

func isoToday() string {
	return time.Now().Format("2006-01-02")
}

// AddIntake adds amount to today's water record, creating it at zero on the
// first intake of the day. Zero and negative amounts are rejected.
func (s *WaterService) AddIntake(ctx context.Context, userID string, amount float64) (*models.WaterRecord, error) {
	if userID == "" {
		return nil, validationf("userId is required")
	}
	if amount <= 0 {
		return nil, validationf("amount must be a positive number")
	}

	date := isoToday()
	var record models.WaterRecord
	err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.WaterRecord{UserID: userID, Date: date, TotalIntake: 0}
	} else if err != nil {
		return nil, &StoreError{Op: "load water record", Err: err}
	}

	record.TotalIntake += amount
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, &StoreError{Op: "save water record", Err: err}
	}
	return &record, nil
}

// GetIntake returns the record for the date (today when empty). A missing
// record synthesizes a zero-valued one; callers cannot tell "never logged"
// from "logged zero" and are not meant to.
func (s *WaterService) GetIntake(ctx context.Context, userID, date string) (*models.WaterRecord, error) {
	if userID == "" {
		return nil, validationf("userId is required")
	}
	if date == "" {
		date = isoToday()
	}

	var record models.WaterRecord
	err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.WaterRecord{UserID: userID, Date: date, TotalIntake: 0}, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "load water record", Err: err}
	}
	return &record, nil
}
