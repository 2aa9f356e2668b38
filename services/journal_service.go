package services

import (
	"errors"
	"time"

	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/models"

	"gorm.io/gorm"
)

// DateOnly normalises a timestamp to UTC midnight so entries compare by
// calendar date, not instant.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type JournalEntryInput struct {
	Date        time.Time
	Title       string
	Description string
}

func ListJournalEntries(userID uint) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	err := scopedJournalEntries(userID).Order("date DESC").Find(&entries).Error
	return entries, err
}

func GetJournalEntry(userID, id uint) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := scopedJournalEntries(userID).First(&entry, "journal_entries.id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &entry, nil
}

// JournalEntriesByDate returns the user's entry for the given calendar
// date; at most one exists.
func JournalEntriesByDate(userID uint, date time.Time) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	err := scopedJournalEntries(userID).Where("date = ?", DateOnly(date)).Find(&entries).Error
	return entries, err
}

func CreateJournalEntry(userID uint, in JournalEntryInput) (*models.JournalEntry, error) {
	date := DateOnly(in.Date)

	taken, err := entryDateTaken(userID, date, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("date", "You already have a journal entry for this date.")
	}

	entry := models.JournalEntry{
		Date:        date,
		Title:       in.Title,
		Description: in.Description,
		UserID:      userID,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func UpdateJournalEntry(userID, id uint, in JournalEntryInput) (*models.JournalEntry, error) {
	entry, err := GetJournalEntry(userID, id)
	if err != nil {
		return nil, err
	}

	date := DateOnly(in.Date)
	taken, err := entryDateTaken(userID, date, entry.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invalid("date", "You already have a journal entry for this date.")
	}

	entry.Date = date
	entry.Title = in.Title
	entry.Description = in.Description
	if err := config.DB.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteJournalEntry removes the entry together with its activities and
// their metrics in one transaction, so no orphan rows survive.
func DeleteJournalEntry(userID, id uint) error {
	entry, err := GetJournalEntry(userID, id)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		var activityIDs []uint
		if err := tx.Model(&models.Activity{}).
			Where("journal_entry_id = ?", entry.ID).
			Pluck("id", &activityIDs).Error; err != nil {
			return err
		}
		if len(activityIDs) > 0 {
			if err := tx.Where("activity_id IN ?", activityIDs).Delete(&models.Metric{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", activityIDs).Delete(&models.Activity{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.JournalEntry{}, entry.ID).Error
	})
}

// AddActivityToEntry creates an activity of the given type on the entry.
// The entry must be the user's (404 otherwise); an unknown or unowned
// activity type is a validation error, matching the API contract.
func AddActivityToEntry(userID, entryID, activityTypeID uint) (*models.Activity, error) {
	entry, err := GetJournalEntry(userID, entryID)
	if err != nil {
		return nil, err
	}

	var activityType models.ActivityType
	if err := scopedActivityTypes(userID).First(&activityType, "activity_types.id = ?", activityTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("activityTypeId", "Invalid activity type ID or not authorized")
		}
		return nil, err
	}

	activity := models.Activity{
		JournalEntryID: entry.ID,
		ActivityTypeID: activityType.ID,
	}
	if err := config.DB.Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func entryDateTaken(userID uint, date time.Time, excludeID uint) (bool, error) {
	q := config.DB.Model(&models.JournalEntry{}).
		Where("user_id = ? AND date = ?", userID, date)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
