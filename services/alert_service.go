package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"nutritrack/models"

	"gorm.io/gorm"
)

// AlertService pushes side effects of a food log: a live progress broadcast
// on the websocket hub, and a push notification when the day's calories cross
// the profile target. Everything here is best effort and never fails the log.
type AlertService struct {
	db   *gorm.DB
	hub  *RealtimeHub
	push *PushService
}

func NewAlertService(db *gorm.DB, hub *RealtimeHub, push *PushService) *AlertService {
	return &AlertService{db: db, hub: hub, push: push}
}

func (a *AlertService) NotifyFoodLogged(ctx context.Context, userID string, day *models.DayLog, deltaCalories float64) {
	if a == nil || day == nil {
		return
	}

	if a.hub != nil {
		a.hub.Broadcast(userID, map[string]any{
			"kind":   "daylog.updated",
			"date":   day.Date.Format("2006-01-02"),
			"totals": day.Totals(),
		})
	}

	if a.push == nil || !a.push.Configured() {
		return
	}

	var profile models.UserProfile
	err := a.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("alert: loading profile for %s: %v", userID, err)
		}
		return
	}

	target := profile.TargetCalorie
	// Notify only on the log that crosses the target, not on every one after.
	if target > 0 && day.Calories >= target && day.Calories-deltaCalories < target {
		a.push.PushToUser(ctx, userID,
			"Calorie target reached",
			fmt.Sprintf("You've hit %.0f of your %.0f kcal target for today.", day.Calories, target),
			map[string]string{"type": "calorie_target", "date": day.Date.Format("2006-01-02")},
		)
	}
}
