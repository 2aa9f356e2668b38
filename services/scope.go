package services

import (
	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/models"

	"gorm.io/gorm"
)

// Ownership-scoped query builders. Every read or write against user data
// starts from one of these, so a row whose ownership chain does not end
// at userID behaves exactly like a row that does not exist. The user id
// is always an explicit parameter, never ambient state.

func scopedCategories(userID uint) *gorm.DB {
	return config.DB.Model(&models.Category{}).Where("categories.user_id = ?", userID)
}

func scopedActivityTypes(userID uint) *gorm.DB {
	return config.DB.Model(&models.ActivityType{}).Where("activity_types.user_id = ?", userID)
}

func scopedJournalEntries(userID uint) *gorm.DB {
	return config.DB.Model(&models.JournalEntry{}).Where("journal_entries.user_id = ?", userID)
}

// MetricType → ActivityType → owner.
func scopedMetricTypes(userID uint) *gorm.DB {
	return config.DB.Model(&models.MetricType{}).
		Select("metric_types.*").
		Joins("JOIN activity_types ON activity_types.id = metric_types.activity_type_id").
		Where("activity_types.user_id = ?", userID)
}

// Activity → JournalEntry → owner.
func scopedActivities(userID uint) *gorm.DB {
	return config.DB.Model(&models.Activity{}).
		Select("activities.*").
		Joins("JOIN journal_entries ON journal_entries.id = activities.journal_entry_id").
		Where("journal_entries.user_id = ?", userID)
}

// Metric → Activity → JournalEntry → owner.
func scopedMetrics(userID uint) *gorm.DB {
	return config.DB.Model(&models.Metric{}).
		Select("metrics.*").
		Joins("JOIN activities ON activities.id = metrics.activity_id").
		Joins("JOIN journal_entries ON journal_entries.id = activities.journal_entry_id").
		Where("journal_entries.user_id = ?", userID)
}
