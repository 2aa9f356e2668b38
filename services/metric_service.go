package services

import (
	"errors"

	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/models"

	"gorm.io/gorm"
)

type MetricInput struct {
	ActivityID   uint
	MetricTypeID uint
	Value        float64
}

func ListMetrics(userID uint) ([]models.Metric, error) {
	metrics := []models.Metric{}
	err := scopedMetrics(userID).Find(&metrics).Error
	return metrics, err
}

func GetMetric(userID, id uint) (*models.Metric, error) {
	var metric models.Metric
	if err := scopedMetrics(userID).First(&metric, "metrics.id = ?", id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &metric, nil
}

func CreateMetric(userID uint, in MetricInput) (*models.Metric, error) {
	// The activity is addressed like a resource: outside the scope it
	// does not exist.
	if _, err := GetActivity(userID, in.ActivityID); err != nil {
		return nil, err
	}
	if err := checkMetricType(userID, in.MetricTypeID); err != nil {
		return nil, err
	}

	metric := models.Metric{
		ActivityID:   in.ActivityID,
		MetricTypeID: in.MetricTypeID,
		Value:        in.Value,
	}
	if err := config.DB.Create(&metric).Error; err != nil {
		return nil, err
	}
	return &metric, nil
}

func UpdateMetric(userID, id uint, in MetricInput) (*models.Metric, error) {
	metric, err := GetMetric(userID, id)
	if err != nil {
		return nil, err
	}
	if _, err := GetActivity(userID, in.ActivityID); err != nil {
		return nil, err
	}
	if err := checkMetricType(userID, in.MetricTypeID); err != nil {
		return nil, err
	}

	metric.ActivityID = in.ActivityID
	metric.MetricTypeID = in.MetricTypeID
	metric.Value = in.Value
	if err := config.DB.Save(metric).Error; err != nil {
		return nil, err
	}
	return metric, nil
}

func DeleteMetric(userID, id uint) error {
	metric, err := GetMetric(userID, id)
	if err != nil {
		return err
	}
	return config.DB.Delete(&models.Metric{}, metric.ID).Error
}

func checkMetricType(userID, metricTypeID uint) error {
	var metricType models.MetricType
	err := scopedMetricTypes(userID).First(&metricType, "metric_types.id = ?", metricTypeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid("metric_type_id", "Invalid metric type ID or not authorized")
	}
	return err
}
