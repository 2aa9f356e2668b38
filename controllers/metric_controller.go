package controllers

import (
	"net/http"

	"github.com/agusyquia/csci42-group4/services"

	"github.com/gin-gonic/gin"
)

// Value is a pointer so an explicit 0 still satisfies "required".
type MetricInput struct {
	ActivityID   uint     `json:"activity_id" binding:"required"`
	MetricTypeID uint     `json:"metric_type_id" binding:"required"`
	Value        *float64 `json:"value" binding:"required"`
}

func ListMetrics(c *gin.Context) {
	metrics, err := services.ListMetrics(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

func GetMetric(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	metric, err := services.GetMetric(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metric)
}

func CreateMetric(c *gin.Context) {
	var input MetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metric, err := services.CreateMetric(currentUserID(c), services.MetricInput{
		ActivityID:   input.ActivityID,
		MetricTypeID: input.MetricTypeID,
		Value:        *input.Value,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, metric)
}

func UpdateMetric(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input MetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metric, err := services.UpdateMetric(currentUserID(c), id, services.MetricInput{
		ActivityID:   input.ActivityID,
		MetricTypeID: input.MetricTypeID,
		Value:        *input.Value,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metric)
}

func DeleteMetric(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteMetric(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
