package services

import (
	"context"
	"errors"
	"time"

	"nutritrack/models"

	"gorm.io/gorm"
)

type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// RangeReport sums every day log inside an inclusive calendar-day range.
// HasLog distinguishes "user never logged food" from "nothing in this range".
type RangeReport struct {
	UserID    string             `json:"userId"`
	From      string             `json:"from"`
	To        string             `json:"to"`
	DaysCount int                `json:"daysCount"`
	Totals    models.NutrientMap `json:"totals"`
	HasLog    bool               `json:"-"`
}

// AggregateRange walks the user's day logs and sums those whose date falls in
// [start, end]. end defaults to start when zero. start after end simply
// matches nothing; that is a valid empty range, not an error.
func (s *ReportService) AggregateRange(ctx context.Context, userID string, start, end time.Time) (*RangeReport, error) {
	if userID == "" {
		return nil, validationf("userId is required")
	}
	if start.IsZero() {
		return nil, validationf("startDate is required")
	}
	if end.IsZero() {
		end = start
	}

	var total int64
	if err := s.db.WithContext(ctx).
		Model(&models.DayLog{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, &StoreError{Op: "count day logs", Err: err}
	}

	report := &RangeReport{
		UserID: userID,
		From:   dayStart(start).Format("2006-01-02"),
		To:     dayStart(end).Format("2006-01-02"),
		Totals: models.NutrientMap{},
		HasLog: total > 0,
	}
	if total == 0 {
		return report, nil
	}

	var rows []models.DayLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(start), dayEnd(end)).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, &StoreError{Op: "load day logs", Err: err}
	}

	for i := range rows {
		for key, amount := range rows[i].Totals() {
			report.Totals[key] += amount
		}
	}
	report.DaysCount = len(rows)
	if report.DaysCount == 0 {
		report.Totals = models.NutrientMap{}
	}
	return report, nil
}

// MacroSet is the four headline macros shared by targets and daily consumed
// values. The day log's "carbs" column lands on the "carb" key here to match
// the profile's target naming.
type MacroSet struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carb     float64 `json:"carb"`
}

// DailySummary is the homepage target-vs-consumed snapshot. Consumed is nil
// when the user has no food logged for the date.
type DailySummary struct {
	UserID   string    `json:"userId"`
	Date     string    `json:"date"`
	Target   MacroSet  `json:"target"`
	Consumed *MacroSet `json:"consumed,omitempty"`
}

// BuildDailySummary fetches the profile targets and the day's totals.
// A missing profile is a NotFoundError; a missing day log is not — the
// summary still carries the targets with Consumed unset.
func (s *ReportService) BuildDailySummary(ctx context.Context, userID string, date time.Time) (*DailySummary, error) {
	if userID == "" {
		return nil, validationf("userId is required")
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Resource: "profile"}
	}
	if err != nil {
		return nil, &StoreError{Op: "load profile", Err: err}
	}

	summary := &DailySummary{
		UserID: userID,
		Date:   dayStart(date).Format("02/01/2006"),
		Target: MacroSet{
			Calories: profile.TargetCalorie,
			Protein:  profile.TargetProtein,
			Fat:      profile.TargetFat,
			Carb:     profile.TargetCarb,
		},
	}

	var day models.DayLog
	err = s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, dayStart(date)).First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return summary, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "load day log", Err: err}
	}

	summary.Consumed = &MacroSet{
		Calories: day.Calories,
		Protein:  day.Protein,
		Fat:      day.Fat,
		Carb:     day.Carbs,
	}
	return summary, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
