package models

import "time"

// Metric is one recorded value for an activity, typed by a MetricType.
type Metric struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ActivityID   uint      `gorm:"index;not null" json:"activity_id"`
	MetricTypeID uint      `gorm:"index;not null" json:"metric_type_id"`
	Value        float64   `json:"value"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
