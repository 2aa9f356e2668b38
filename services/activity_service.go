package services

import (
	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/models"

	"gorm.io/gorm"
)

func ListActivities(userID uint) ([]models.Activity, error) {
	activities := []models.Activity{}
	err := scopedActivities(userID).Find(&activities).Error
	return activities, err
}

func GetActivity(userID, id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := scopedActivities(userID).First(&activity, "activities.id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &activity, nil
}

func ListActivitiesByType(userID, activityTypeID uint) ([]models.Activity, error) {
	activities := []models.Activity{}
	err := scopedActivities(userID).
		Where("activities.activity_type_id = ?", activityTypeID).
		Find(&activities).Error
	return activities, err
}

// AddActivityToJournal creates an activity linking the given journal
// entry and activity type. Both references must resolve inside the
// user's scope; a miss on either is a not-found.
func AddActivityToJournal(userID, journalEntryID, activityTypeID uint) (*models.Activity, error) {
	var entry models.JournalEntry
	if err := scopedJournalEntries(userID).First(&entry, "journal_entries.id = ?", journalEntryID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	var activityType models.ActivityType
	if err := scopedActivityTypes(userID).First(&activityType, "activity_types.id = ?", activityTypeID).Error; err != nil {
		return nil, notFoundOr(err)
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

// UpdateActivity repoints an activity; both new parents are re-checked
// against the caller's scope.
func UpdateActivity(userID, id, journalEntryID, activityTypeID uint) (*models.Activity, error) {
	activity, err := GetActivity(userID, id)
	if err != nil {
		return nil, err
	}

	if _, err := GetJournalEntry(userID, journalEntryID); err != nil {
		return nil, err
	}
	var activityType models.ActivityType
	if err := scopedActivityTypes(userID).First(&activityType, "activity_types.id = ?", activityTypeID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	activity.JournalEntryID = journalEntryID
	activity.ActivityTypeID = activityTypeID
	if err := config.DB.Save(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

func DeleteActivity(userID, id uint) error {
	activity, err := GetActivity(userID, id)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&models.Metric{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Activity{}, activity.ID).Error
	})
}

// ListMetricsForActivity returns every metric recorded on the activity.
func ListMetricsForActivity(userID, activityID uint) ([]models.Metric, error) {
	activity, err := GetActivity(userID, activityID)
	if err != nil {
		return nil, err
	}

	metrics := []models.Metric{}
	err = config.DB.Where("activity_id = ?", activity.ID).Find(&metrics).Error
	return metrics, err
}
