package models

import "gorm.io/gorm"

// WaterRecord tracks cumulative water intake for one user on one calendar
// day, keyed by the ISO date string. Intake only ever increases within a day.
type WaterRecord struct {
	gorm.Model
	UserID      string  `gorm:"index:idx_water_user_date,unique;not null" json:"userId"`
	Date        string  `gorm:"size:10;index:idx_water_user_date,unique;not null" json:"date"` // YYYY-MM-DD
	TotalIntake float64 `gorm:"default:0" json:"totalIntake"`
}
