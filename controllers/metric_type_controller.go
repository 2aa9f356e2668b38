package controllers

import (
	"net/http"

	"github.com/agusyquia/csci42-group4/services"

	"github.com/gin-gonic/gin"
)

type MetricTypeInput struct {
	Name           string `json:"name" binding:"required"`
	Unit           string `json:"unit"`
	ActivityTypeID uint   `json:"activity_type_id" binding:"required"`
}

func ListMetricTypes(c *gin.Context) {
	metricTypes, err := services.ListMetricTypes(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metricTypes)
}

func GetMetricType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	metricType, err := services.GetMetricType(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metricType)
}

func CreateMetricType(c *gin.Context) {
	var input MetricTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metricType, err := services.CreateMetricType(currentUserID(c), input.Name, input.Unit, input.ActivityTypeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, metricType)
}

func UpdateMetricType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input MetricTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metricType, err := services.UpdateMetricType(currentUserID(c), id, input.Name, input.Unit, input.ActivityTypeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metricType)
}

func DeleteMetricType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteMetricType(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
