package models

import "time"

// Activity links one ActivityType to one JournalEntry. Ownership follows
// the journal entry.
type Activity struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	JournalEntryID uint      `gorm:"index;not null" json:"journal_entry_id"`
	ActivityTypeID uint      `gorm:"index;not null" json:"activity_type_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Metrics []Metric `gorm:"constraint:OnDelete:CASCADE" json:"metrics,omitempty"`
}
