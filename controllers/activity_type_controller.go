package controllers

import (
	"net/http"

	"github.com/agusyquia/csci42-group4/services"

	"github.com/gin-gonic/gin"
)

type ActivityTypeInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CategoryID  *uint  `json:"category_id"`
}

func ListActivityTypes(c *gin.Context) {
	activityTypes, err := services.ListActivityTypes(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activityTypes)
}

func GetActivityType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	activityType, err := services.GetActivityType(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activityType)
}

func CreateActivityType(c *gin.Context) {
	var input ActivityTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activityType, err := services.CreateActivityType(currentUserID(c), input.Name, input.Description, input.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activityType)
}

func UpdateActivityType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input ActivityTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activityType, err := services.UpdateActivityType(currentUserID(c), id, input.Name, input.Description, input.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activityType)
}

func DeleteActivityType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteActivityType(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
