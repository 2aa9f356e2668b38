package models

import "time"

// ActivityType is a user-defined kind of activity ("Running", "Reading").
// The category is optional.
type ActivityType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  *uint     `gorm:"index" json:"category_id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	MetricTypes []MetricType `gorm:"constraint:OnDelete:CASCADE" json:"metric_types,omitempty"`
}
