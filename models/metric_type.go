package models

import "time"

// MetricType describes a measurement that can be recorded against
// activities of one ActivityType ("Distance" in "km"). It is owned by
// whoever owns the activity type.
type MetricType struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Unit           string    `gorm:"size:50" json:"unit"`
	ActivityTypeID uint      `gorm:"index;not null" json:"activity_type_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
