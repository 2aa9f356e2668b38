package controllers

import (
	"net/http"
	"strconv"

	"github.com/agusyquia/csci42-group4/services"

	"github.com/gin-gonic/gin"
)

type ActivityInput struct {
	JournalEntryID uint `json:"journal_entry_id" binding:"required"`
	ActivityTypeID uint `json:"activity_type_id" binding:"required"`
}

func ListActivities(c *gin.Context) {
	activities, err := services.ListActivities(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func GetActivity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	activity, err := services.GetActivity(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// CreateActivity backs both POST /activities and the add_to_journal
// convenience route; the payload names both ends of the link.
func CreateActivity(c *gin.Context) {
	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := services.AddActivityToJournal(currentUserID(c), input.JournalEntryID, input.ActivityTypeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

func UpdateActivity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	activity, err := services.UpdateActivity(currentUserID(c), id, input.JournalEntryID, input.ActivityTypeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

func DeleteActivity(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteActivity(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListActivitiesByType filters the caller's activities by
// ?activity_type_id=.
func ListActivitiesByType(c *gin.Context) {
	typeParam := c.Query("activity_type_id")
	if typeParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Activity type ID parameter is required"})
		return
	}
	activityTypeID, err := strconv.ParseUint(typeParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity type ID"})
		return
	}

	activities, err := services.ListActivitiesByType(currentUserID(c), uint(activityTypeID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// ListActivityMetrics returns every metric recorded on one activity.
func ListActivityMetrics(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	metrics, err := services.ListMetricsForActivity(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
