package services

import (
	"context"
	"errors"
	"log"

	"nutritrack/models"

	"gorm.io/gorm"
)

// TokenService keeps the per-user push token set: deduplicated adds on
// registration, removal on logout. The profile must exist before a token can
// be attached to it.
type TokenService struct {
	db   *gorm.DB
	push *PushService
}

func NewTokenService(db *gorm.DB, push *PushService) *TokenService {
	return &TokenService{db: db, push: push}
}

// RegisterToken adds the token for the user if it is not already present and
// updates the last-known location when one is supplied. Returns the user's
// full token list after the change.
func (s *TokenService) RegisterToken(ctx context.Context, userID, token, location string) ([]string, error) {
	if userID == "" || token == "" {
		return nil, validationf("userId and fcmToken are required")
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "profile"}
	}
	if err != nil {
		return nil, &StoreError{Op: "load profile", Err: err}
	}

	var existing models.DeviceToken
	err = s.db.WithContext(ctx).Where("user_id = ? AND token = ?", userID, token).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record := models.DeviceToken{UserID: userID, Token: token}
		if s.push.Configured() {
			arn, err := s.push.CreateEndpoint(ctx, token)
			if err != nil {
				// Bookkeeping still succeeds; delivery just won't reach
				// this device until re-registration.
				log.Printf("token: creating SNS endpoint for %s: %v", userID, err)
			} else {
				record.EndpointARN = arn
			}
		}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, &StoreError{Op: "save device token", Err: err}
		}
	} else if err != nil {
		return nil, &StoreError{Op: "load device token", Err: err}
	}

	if location != "" {
		profile.Location = location
		if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
			return nil, &StoreError{Op: "save profile location", Err: err}
		}
	}

	return s.Tokens(ctx, userID)
}

// RemoveToken drops the token on logout. Removing a token that was never
// registered is fine.
func (s *TokenService) RemoveToken(ctx context.Context, userID, token string) ([]string, error) {
	if userID == "" || token == "" {
		return nil, validationf("userId and fcmToken are required")
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "profile"}
	}
	if err != nil {
		return nil, &StoreError{Op: "load profile", Err: err}
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&models.DeviceToken{}).Error; err != nil {
		return nil, &StoreError{Op: "delete device token", Err: err}
	}

	return s.Tokens(ctx, userID)
}

// Tokens lists the user's registered tokens.
func (s *TokenService) Tokens(ctx context.Context, userID string) ([]string, error) {
	var records []models.DeviceToken
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, &StoreError{Op: "list device tokens", Err: err}
	}

	tokens := make([]string, 0, len(records))
	for _, r := range records {
		tokens = append(tokens, r.Token)
	}
	return tokens, nil
}
