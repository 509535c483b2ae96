package services

import (
	"context"
	"errors"
	"log"

	"nutritrack/models"

	"gorm.io/gorm"
)

// TargetPlanner derives daily macro targets from a user's biometrics.
type TargetPlanner interface {
	PlanTargets(ctx context.Context, profile *models.UserProfile) (MacroSet, error)
}

type ProfileService struct {
	db      *gorm.DB
	planner TargetPlanner
}

func NewProfileService(db *gorm.DB, planner TargetPlanner) *ProfileService {
	return &ProfileService{db: db, planner: planner}
}

// ProfileInput is the write shape for create and edit.
type ProfileInput struct {
	UserID           string  `json:"userId"`
	Name             string  `json:"name"`
	MobileNumber     string  `json:"mobileNumber"`
	Age              int     `json:"age"`
	Gender           string  `json:"gender"`
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	WeightUnit       string  `json:"weightUnit"`
	HeightUnit       string  `json:"heightUnit"`
	TargetWeight     float64 `json:"targetWeight"`
	Goal             string  `json:"goal"`
	PhysicalActivity string  `json:"physicalActivity"`
}

func (in *ProfileInput) validate(requireUser bool) error {
	if requireUser && in.UserID == "" {
		return validationf("userId is required")
	}
	switch in.Goal {
	case "", models.GoalGain, models.GoalLose, models.GoalStayFit:
	default:
		return validationf("goal must be one of: gain, lose, stay fit")
	}
	switch in.PhysicalActivity {
	case "", models.ActivityLess, models.ActivityNormal, models.ActivityIntense:
	default:
		return validationf("physicalActivity must be one of: lessActive, NormalActive, IntenseWorkOut")
	}
	return nil
}

func (in *ProfileInput) apply(p *models.UserProfile) {
	p.Name = in.Name
	p.MobileNumber = in.MobileNumber
	p.Age = in.Age
	p.Gender = in.Gender
	p.Weight = in.Weight
	p.Height = in.Height
	p.WeightUnit = in.WeightUnit
	p.HeightUnit = in.HeightUnit
	p.TargetWeight = in.TargetWeight
	p.Goal = in.Goal
	p.PhysicalActivity = in.PhysicalActivity
}

// planTargets asks the planner for macro targets. A planner failure degrades
// to zero targets rather than blocking the profile write.
func (s *ProfileService) planTargets(ctx context.Context, p *models.UserProfile) MacroSet {
	if s.planner == nil {
		return MacroSet{}
	}
	targets, err := s.planner.PlanTargets(ctx, p)
	if err != nil {
		log.Printf("target planning failed for user %s: %v", p.UserID, err)
		return MacroSet{}
	}
	return targets
}

func (s *ProfileService) CreateProfile(ctx context.Context, in ProfileInput) (*models.UserProfile, error) {
	if err := in.validate(true); err != nil {
		return nil, err
	}

	var existing models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", in.UserID).First(&existing).Error
	if err == nil {
		return nil, validationf("profile already exists for user %s", in.UserID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &StoreError{Op: "check profile", Err: err}
	}

	profile := models.UserProfile{UserID: in.UserID}
	in.apply(&profile)

	targets := s.planTargets(ctx, &profile)
	profile.TargetCalorie = targets.Calories
	profile.TargetProtein = targets.Protein
	profile.TargetFat = targets.Fat
	profile.TargetCarb = targets.Carb

	if err := s.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, &StoreError{Op: "create profile", Err: err}
	}
	return &profile, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
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
	return &profile, nil
}

// UpdateProfile upserts the profile and re-plans the macro targets from the
// new biometrics on every edit.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*models.UserProfile, error) {
	if userID == "" {
		return nil, validationf("userId is required")
	}
	if err := in.validate(false); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, &StoreError{Op: "load profile", Err: err}
	}

	in.apply(&profile)

	targets := s.planTargets(ctx, &profile)
	profile.TargetCalorie = targets.Calories
	profile.TargetProtein = targets.Protein
	profile.TargetFat = targets.Fat
	profile.TargetCarb = targets.Carb

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, &StoreError{Op: "save profile", Err: err}
	}
	return &profile, nil
}
