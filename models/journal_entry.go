package models

import "time"

// JournalEntry is one user's entry for one calendar date. Date is stored
// at UTC midnight; the (user_id, date) pair is unique.
type JournalEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        time.Time `gorm:"index:idx_entries_user_date,unique;not null" json:"date"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	UserID      uint      `gorm:"index:idx_entries_user_date,unique;not null" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Activities []Activity `gorm:"constraint:OnDelete:CASCADE" json:"activities,omitempty"`
}
