package services

import (
	"errors"

	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/models"

	"gorm.io/gorm"
)

// CRUD over the user-defined vocabulary: categories, activity types and
// metric types. Owners are stamped server-side; clients never set them.

func ListCategories(userID uint) ([]models.Category, error) {
	categories := []models.Category{}
	err := scopedCategories(userID).Order("name").Find(&categories).Error
	return categories, err
}

func GetCategory(userID, id uint) (*models.Category, error) {
	var category models.Category
	if err := scopedCategories(userID).First(&category, "categories.id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &category, nil
}

func CreateCategory(userID uint, name, description string) (*models.Category, error) {
	category := models.Category{
		Name:        name,
		Description: description,
		UserID:      userID,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func UpdateCategory(userID, id uint, name, description string) (*models.Category, error) {
	category, err := GetCategory(userID, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	category.Description = description
	if err := config.DB.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory detaches the category's activity types before removing
// it; the types themselves stay.
func DeleteCategory(userID, id uint) error {
	category, err := GetCategory(userID, id)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ActivityType{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, category.ID).Error
	})
}

func ListActivityTypes(userID uint) ([]models.ActivityType, error) {
	activityTypes := []models.ActivityType{}
	err := scopedActivityTypes(userID).Order("name").Find(&activityTypes).Error
	return activityTypes, err
}

func GetActivityType(userID, id uint) (*models.ActivityType, error) {
	var activityType models.ActivityType
	if err := scopedActivityTypes(userID).First(&activityType, "activity_types.id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &activityType, nil
}

func CreateActivityType(userID uint, name, description string, categoryID *uint) (*models.ActivityType, error) {
	if err := checkCategory(userID, categoryID); err != nil {
		return nil, err
	}
	activityType := models.ActivityType{
		Name:        name,
		Description: description,
		CategoryID:  categoryID,
		UserID:      userID,
	}
	if err := config.DB.Create(&activityType).Error; err != nil {
		return nil, err
	}
	return &activityType, nil
}

func UpdateActivityType(userID, id uint, name, description string, categoryID *uint) (*models.ActivityType, error) {
	activityType, err := GetActivityType(userID, id)
	if err != nil {
		return nil, err
	}
	if err := checkCategory(userID, categoryID); err != nil {
		return nil, err
	}
	activityType.Name = name
	activityType.Description = description
	activityType.CategoryID = categoryID
	if err := config.DB.Save(activityType).Error; err != nil {
		return nil, err
	}
	return activityType, nil
}

// DeleteActivityType cascades through everything hanging off the type:
// its metric types, its activities and their metrics.
func DeleteActivityType(userID, id uint) error {
	activityType, err := GetActivityType(userID, id)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var activityIDs []uint
		if err := tx.Model(&models.Activity{}).
			Where("activity_type_id = ?", activityType.ID).
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
		if err := tx.Where("activity_type_id = ?", activityType.ID).Delete(&models.MetricType{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ActivityType{}, activityType.ID).Error
	})
}

func ListMetricTypes(userID uint) ([]models.MetricType, error) {
	metricTypes := []models.MetricType{}
	err := scopedMetricTypes(userID).Order("metric_types.name").Find(&metricTypes).Error
	return metricTypes, err
}

func GetMetricType(userID, id uint) (*models.MetricType, error) {
	var metricType models.MetricType
	if err := scopedMetricTypes(userID).First(&metricType, "metric_types.id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &metricType, nil
}

func CreateMetricType(userID uint, name, unit string, activityTypeID uint) (*models.MetricType, error) {
	if err := checkActivityType(userID, activityTypeID); err != nil {
		return nil, err
	}
	metricType := models.MetricType{
		Name:           name,
		Unit:           unit,
		ActivityTypeID: activityTypeID,
	}
	if err := config.DB.Create(&metricType).Error; err != nil {
		return nil, err
	}
	return &metricType, nil
}

func UpdateMetricType(userID, id uint, name, unit string, activityTypeID uint) (*models.MetricType, error) {
	metricType, err := GetMetricType(userID, id)
	if err != nil {
		return nil, err
	}
	if err := checkActivityType(userID, activityTypeID); err != nil {
		return nil, err
	}
	metricType.Name = name
	metricType.Unit = unit
	metricType.ActivityTypeID = activityTypeID
	if err := config.DB.Save(metricType).Error; err != nil {
		return nil, err
	}
	return metricType, nil
}

// DeleteMetricType removes the type and every metric recorded under it.
func DeleteMetricType(userID, id uint) error {
	metricType, err := GetMetricType(userID, id)
	if err != nil {
		return err
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("metric_type_id = ?", metricType.ID).Delete(&models.Metric{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MetricType{}, metricType.ID).Error
	})
}

func checkCategory(userID uint, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	var category models.Category
	err := scopedCategories(userID).First(&category, "categories.id = ?", *categoryID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid("category_id", "Invalid category ID or not authorized")
	}
	return err
}

func checkActivityType(userID, activityTypeID uint) error {
	var activityType models.ActivityType
	err := scopedActivityTypes(userID).First(&activityType, "activity_types.id = ?", activityTypeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid("activity_type_id", "Invalid activity type ID or not authorized")
	}
	return err
}
