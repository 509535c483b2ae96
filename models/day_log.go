package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Item source kinds.
const (
	SourceStructured = "structured"
	SourceText       = "text"
	SourceImage      = "image"
)

// NutrientMap is an open-ended nutrient-name → amount mapping, stored as JSON.
type NutrientMap map[string]float64

func (m NutrientMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *NutrientMap) Scan(value interface{}) error {
	if value == nil {
		*m = NutrientMap{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into NutrientMap", value)
	}
	return json.Unmarshal(b, m)
}

// DayLog is one user's nutrition totals for one calendar day, unique on
// (user_id, date). Rows are created lazily on the first food logged for that
// day and are never reset.
type DayLog struct {
	gorm.Model
	UserID string    `gorm:"index:idx_day_logs_user_date,unique;not null" json:"userId"`
	Date   time.Time `gorm:"index:idx_day_logs_user_date,unique;not null" json:"date"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Sugar    float64 `json:"sugar"`
	Calcium  float64 `json:"calcium"`

	// Nutrient keys outside the fixed columns are written through unchanged.
	Extras NutrientMap `gorm:"type:json" json:"extras,omitempty"`

	Items []FoodItem `gorm:"foreignKey:DayLogID" json:"foodItems"`
}

// Apply adds a nutrient delta into the running totals. Known keys accumulate
// into their columns, everything else into Extras.
func (d *DayLog) Apply(delta NutrientMap) {
	for key, amount := range delta {
		switch key {
		case "calories":
			d.Calories += amount
		case "protein":
			d.Protein += amount
		case "fat":
			d.Fat += amount
		case "carbs":
			d.Carbs += amount
		case "sugar":
			d.Sugar += amount
		case "calcium":
			d.Calcium += amount
		default:
			if d.Extras == nil {
				d.Extras = NutrientMap{}
			}
			d.Extras[key] += amount
		}
	}
}

// Totals flattens the fixed columns and Extras into one map.
func (d *DayLog) Totals() NutrientMap {
	out := NutrientMap{
		"calories": d.Calories,
		"protein":  d.Protein,
		"fat":      d.Fat,
		"carbs":    d.Carbs,
		"sugar":    d.Sugar,
		"calcium":  d.Calcium,
	}
	for key, amount := range d.Extras {
		out[key] += amount
	}
	return out
}

// FoodItem is one logged food with the raw nutrient snapshot that was folded
// into its day's totals, kept for per-item inspection.
type FoodItem struct {
	gorm.Model
	DayLogID  uint        `gorm:"index;not null" json:"-"`
	Name      string      `json:"name"`
	Nutrients NutrientMap `gorm:"type:json" json:"nutrients"`
	ImageURL  string      `json:"imageUrl,omitempty"`
	Source    string      `gorm:"size:16" json:"sourceType"` // structured | text | image
}
