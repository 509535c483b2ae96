package models

import (
	"gorm.io/gorm"
)

// Goal values.
const (
	GoalGain    = "gain"
	GoalLose    = "lose"
	GoalStayFit = "stay fit"
)

// Physical activity levels.
const (
	ActivityLess    = "lessActive"
	ActivityNormal  = "NormalActive"
	ActivityIntense = "IntenseWorkOut"
)

// UserProfile holds one user's biometrics and AI-planned daily targets.
// Targets are recomputed on every profile edit.
type UserProfile struct {
	gorm.Model
	UserID string `gorm:"uniqueIndex;not null" json:"userId"`

	Name         string  `json:"name"`
	MobileNumber string  `json:"mobileNumber"`
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Weight       float64 `json:"weight"`
	Height       float64 `json:"height"`
	WeightUnit   string  `json:"weightUnit"`
	HeightUnit   string  `json:"heightUnit"`
	TargetWeight float64 `json:"targetWeight"`

	Goal             string `gorm:"size:16" json:"goal"`             // gain | lose | stay fit
	PhysicalActivity string `gorm:"size:24" json:"physicalActivity"` // lessActive | NormalActive | IntenseWorkOut

	TargetCalorie float64 `gorm:"default:0" json:"targetCalorie"`
	TargetProtein float64 `gorm:"default:0" json:"targetProtein"`
	TargetFat     float64 `gorm:"default:0" json:"targetFat"`
	TargetCarb    float64 `gorm:"default:0" json:"targetCarb"`

	Location string `json:"location,omitempty"`
}
