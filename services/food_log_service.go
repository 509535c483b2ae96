package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nutritrack/models"
	"nutritrack/utils"

	"gorm.io/gorm"
)

// Estimator turns a free-text food description into a nutrient record.
type Estimator interface {
	EstimateNutrition(ctx context.Context, description string) (models.NutrientMap, error)
}

// FoodRecognizer labels the food visible in an image.
type FoodRecognizer interface {
	DetectFoodLabels(ctx context.Context, image []byte) ([]string, error)
}

// ImageUploader stores an uploaded food image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, contentType, prefix string) (string, error)
}

type FoodLogService struct {
	db        *gorm.DB
	estimator Estimator
	vision    FoodRecognizer
	uploader  ImageUploader
	alerts    *AlertService
}

func NewFoodLogService(db *gorm.DB, est Estimator, vision FoodRecognizer, up ImageUploader, alerts *AlertService) *FoodLogService {
	return &FoodLogService{db: db, estimator: est, vision: vision, uploader: up, alerts: alerts}
}

// LogFoodInput carries one of three nutrient sources: a pre-structured JSON
// payload, a data-URI image, or free text.
type LogFoodInput struct {
	UserID      string
	FoodData    json.RawMessage
	CustomText  string
	ImageBase64 string
}

// LogFood resolves the input to a nutrient delta and folds it into today's
// day log. Estimation happens before any write, so an estimator failure
// leaves the log untouched.
func (s *FoodLogService) LogFood(ctx context.Context, in LogFoodInput) (*models.DayLog, error) {
	if in.UserID == "" {
		return nil, validationf("userId is required")
	}
	if len(in.FoodData) == 0 && in.CustomText == "" && in.ImageBase64 == "" {
		return nil, validationf("one of foodData, customText or image is required")
	}

	delta, item, err := s.resolveSource(ctx, in)
	if err != nil {
		return nil, err
	}

	day, err := s.RecordFood(ctx, in.UserID, time.Now(), delta, item)
	if err != nil {
		return nil, err
	}

	if s.alerts != nil {
		s.alerts.NotifyFoodLogged(ctx, in.UserID, day, delta["calories"])
	}
	return day, nil
}

func (s *FoodLogService) resolveSource(ctx context.Context, in LogFoodInput) (models.NutrientMap, models.FoodItem, error) {
	switch {
	case len(in.FoodData) > 0:
		var delta models.NutrientMap
		if err := json.Unmarshal(in.FoodData, &delta); err != nil {
			return nil, models.FoodItem{}, validationf("foodData must be a JSON object of nutrient numbers")
		}
		name := in.CustomText
		if name == "" {
			name = "Custom Food"
		}
		return delta, models.FoodItem{Name: name, Nutrients: delta, Source: models.SourceStructured}, nil

	case in.ImageBase64 != "":
		if s.vision == nil || s.uploader == nil {
			return nil, models.FoodItem{}, &EstimationError{Msg: "image recognition is not configured"}
		}
		data, contentType, err := utils.DecodeDataURI(in.ImageBase64)
		if err != nil {
			return nil, models.FoodItem{}, validationf("invalid image data: %v", err)
		}
		imageURL, err := s.uploader.Upload(ctx, data, contentType, in.UserID)
		if err != nil {
			return nil, models.FoodItem{}, &StoreError{Op: "upload food image", Err: err}
		}
		labels, err := s.vision.DetectFoodLabels(ctx, data)
		if err != nil {
			return nil, models.FoodItem{}, &EstimationError{Msg: "image recognition failed", Cause: err}
		}
		if len(labels) == 0 {
			return nil, models.FoodItem{}, &EstimationError{Msg: "no food detected in image"}
		}
		delta, err := s.estimate(ctx, labels[0])
		if err != nil {
			return nil, models.FoodItem{}, err
		}
		return delta, models.FoodItem{Name: labels[0], Nutrients: delta, ImageURL: imageURL, Source: models.SourceImage}, nil

	default:
		delta, err := s.estimate(ctx, in.CustomText)
		if err != nil {
			return nil, models.FoodItem{}, err
		}
		return delta, models.FoodItem{Name: in.CustomText, Nutrients: delta, Source: models.SourceText}, nil
	}
}

func (s *FoodLogService) estimate(ctx context.Context, description string) (models.NutrientMap, error) {
	if s.estimator == nil {
		return nil, &EstimationError{Msg: "estimator is not configured"}
	}
	delta, err := s.estimator.EstimateNutrition(ctx, description)
	if err != nil {
		var ee *EstimationError
		if errors.As(err, &ee) {
			return nil, err
		}
		return nil, &EstimationError{Msg: "estimator call failed", Cause: err}
	}
	return delta, nil
}

// RecordFood merges a nutrient delta and its food item into the day log for
// (userID, date), creating the row lazily. Totals and the item row are
// written in one transaction so a failure cannot leave them diverged.
//
// There is no locking between the read and the save: two requests racing on
// the same (user, date) can lose an update. Known limitation, see DESIGN.md.
func (s *FoodLogService) RecordFood(ctx context.Context, userID string, date time.Time, delta models.NutrientMap, item models.FoodItem) (*models.DayLog, error) {
	if userID == "" {
		return nil, validationf("userId is required")
	}
	day := dayStart(date)

	var out models.DayLog
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var log models.DayLog
		err := tx.Where("user_id = ? AND date = ?", userID, day).First(&log).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log = models.DayLog{UserID: userID, Date: day}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		log.Apply(delta)
		if err := tx.Save(&log).Error; err != nil {
			return err
		}

		item.DayLogID = log.ID
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		return tx.Preload("Items").First(&out, log.ID).Error
	})
	if err != nil {
		return nil, &StoreError{Op: "record food", Err: err}
	}
	return &out, nil
}

// ListLog returns the user's full day-log history, oldest first. An empty
// slice means the user has never logged food; that is not an error.
func (s *FoodLogService) ListLog(ctx context.Context, userID string) ([]models.DayLog, error) {
	if userID == "" {
		return nil, validationf("userId is required")
	}
	var logs []models.DayLog
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, &StoreError{Op: "list day logs", Err: err}
	}
	return logs, nil
}
