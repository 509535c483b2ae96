package models

import "time"

// DeviceToken is one registered push token for a user. The (user_id, token)
// unique index keeps the per-user token set deduplicated.
type DeviceToken struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	UserID      string    `gorm:"index:idx_device_tokens_user_token,unique;not null" json:"userId"`
	Token       string    `gorm:"size:512;index:idx_device_tokens_user_token,unique;not null" json:"token"`
	EndpointARN string    `gorm:"size:256" json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
