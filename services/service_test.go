package services

import (
	"testing"

	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points config.DB at a fresh in-memory database. A single
// connection keeps the private :memory: store alive for the whole test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func createTestActivityType(t *testing.T, userID uint, name string) *models.ActivityType {
	t.Helper()
	activityType, err := CreateActivityType(userID, name, "", nil)
	require.NoError(t, err)
	return activityType
}
