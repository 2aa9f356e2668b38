package controllers

import (
	"net/http"
	"time"

	"github.com/agusyquia/csci42-group4/services"

	"github.com/gin-gonic/gin"
)

type JournalEntryInput struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AddActivityInput struct {
	ActivityTypeID uint `json:"activityTypeId" binding:"required"`
}

func ListJournalEntries(c *gin.Context) {
	entries, err := services.ListJournalEntries(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func GetJournalEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	entry, err := services.GetJournalEntry(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func CreateJournalEntry(c *gin.Context) {
	var input JournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	entry, err := services.CreateJournalEntry(currentUserID(c), services.JournalEntryInput{
		Date:        date,
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func UpdateJournalEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input JournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	entry, err := services.UpdateJournalEntry(currentUserID(c), id, services.JournalEntryInput{
		Date:        date,
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeleteJournalEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteJournalEntry(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetJournalEntryByDate returns the caller's entry for ?date=YYYY-MM-DD
// as a list of zero or one entries.
func GetJournalEntryByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date parameter is required"})
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	entries, err := services.JournalEntriesByDate(currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddActivityToEntry attaches a new activity of the given type to the
// entry.
func AddActivityToEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input AddActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := services.AddActivityToEntry(currentUserID(c), id, input.ActivityTypeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}
