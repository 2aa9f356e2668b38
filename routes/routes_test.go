package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agusyquia/csci42-group4/config"
	"github.com/agusyquia/csci42-group4/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	return routes.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/users/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"username": username,
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok)
	return token
}

func TestRegister(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/users/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	require.Equal(t, "alice", body["username"])
	require.NotContains(t, body, "password")

	// Duplicate username comes back as a field error.
	w = doJSON(t, r, http.MethodPost, "/users/register", "", gin.H{
		"username": "alice",
		"email":    "alice2@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decode(t, w), "username")

	// Missing required fields are rejected by binding.
	w = doJSON(t, r, http.MethodPost, "/users/register", "", gin.H{"username": "bob"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestsRequireToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/journal-entries", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/journal-entries", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJournalEntryScenario(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice")

	// Create an entry for 2024-01-01.
	w := doJSON(t, r, http.MethodPost, "/journal-entries", token, gin.H{
		"date":  "2024-01-01",
		"title": "New year",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	entryID := decode(t, w)["id"].(float64)

	// Same date again is a validation error.
	w = doJSON(t, r, http.MethodPost, "/journal-entries", token, gin.H{"date": "2024-01-01"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decode(t, w), "date")

	// An activity type to attach.
	w = doJSON(t, r, http.MethodPost, "/activity-types", token, gin.H{"name": "Running"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	typeID := decode(t, w)["id"].(float64)

	// Attach it to the entry.
	w = doJSON(t, r, http.MethodPost, "/journal-entries/1/add_activity", token, gin.H{
		"activityTypeId": typeID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	activity := decode(t, w)
	require.Equal(t, entryID, activity["journal_entry_id"])
	require.Equal(t, typeID, activity["activity_type_id"])

	// The fresh activity has no metrics yet.
	w = doJSON(t, r, http.MethodGet, "/activities/1/metrics", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())

	// by-date round trip.
	w = doJSON(t, r, http.MethodGet, "/journal-entries/by-date?date=2024-01-01", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, entryID, entries[0]["id"])

	w = doJSON(t, r, http.MethodGet, "/journal-entries/by-date?date=not-a-date", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/journal-entries/by-date", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddActivityRejectsForeignType(t *testing.T) {
	r := setupRouter(t)
	aliceToken := registerAndLogin(t, r, "alice")
	bobToken := registerAndLogin(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, "/journal-entries", aliceToken, gin.H{"date": "2024-01-01"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/activity-types", bobToken, gin.H{"name": "Running"})
	require.Equal(t, http.StatusCreated, w.Code)
	bobTypeID := decode(t, w)["id"].(float64)

	w = doJSON(t, r, http.MethodPost, "/journal-entries/1/add_activity", aliceToken, gin.H{
		"activityTypeId": bobTypeID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivityInvisibleAcrossUsers(t *testing.T) {
	r := setupRouter(t)
	aliceToken := registerAndLogin(t, r, "alice")
	bobToken := registerAndLogin(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, "/journal-entries", aliceToken, gin.H{"date": "2024-01-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/activity-types", aliceToken, gin.H{"name": "Running"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/activities/add_to_journal", aliceToken, gin.H{
		"journal_entry_id": 1,
		"activity_type_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	activityID := decode(t, w)["id"].(float64)

	// Bob gets a plain 404, indistinguishable from absence.
	w = doJSON(t, r, http.MethodGet, "/activities/1", bobToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Alice still sees it.
	w = doJSON(t, r, http.MethodGet, "/activities/1", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, activityID, decode(t, w)["id"])
}

func TestAddToJournalUnknownRefs(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/activities/add_to_journal", token, gin.H{
		"journal_entry_id": 42,
		"activity_type_id": 42,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Missing fields are a binding error.
	w = doJSON(t, r, http.MethodPost, "/activities/add_to_journal", token, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivitiesByTypeRequiresParam(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/activities/by-type", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/activities/by-type?activity_type_id=1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestMetricValidation(t *testing.T) {
	r := setupRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/journal-entries", token, gin.H{"date": "2024-01-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/activity-types", token, gin.H{"name": "Running"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/metric-types", token, gin.H{
		"name":             "Distance",
		"unit":             "km",
		"activity_type_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodPost, "/activities/add_to_journal", token, gin.H{
		"journal_entry_id": 1,
		"activity_type_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Missing value fails binding with the validator's message.
	w = doJSON(t, r, http.MethodPost, "/metrics", token, gin.H{
		"activity_id":    1,
		"metric_type_id": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/metrics", token, gin.H{
		"activity_id":    1,
		"metric_type_id": 1,
		"value":          5.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Equal(t, 5.5, decode(t, w)["value"])

	w = doJSON(t, r, http.MethodGet, "/activities/1/metrics", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var metrics []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))
	require.Len(t, metrics, 1)
}
