package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DougLewin/SuperWeirdOneBudFast/config"
	"github.com/DougLewin/SuperWeirdOneBudFast/models"
	"github.com/DougLewin/SuperWeirdOneBudFast/routes"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
	"github.com/DougLewin/SuperWeirdOneBudFast/utils"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop().Sugar()
	utils.InitJWT("test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite is per-connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.MigrateDB(db))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	auth := services.NewAuthService(db, redisClient)

	r := gin.New()
	routes.RegisterRoutes(r, db, auth)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Status)
	assert.Equal(t, "System operational", resp.Message)
	assert.Equal(t, "1.0.0", resp.Version)
}

func validSessionPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":            "Strickland Bay",
		"description":      "offshore, overhead sets",
		"cost":             20,
		"estimated_return": 80,
		"zone":             "West End",
		"swell_score":      50,
	}
}

func TestCreateSessionComputesScore(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/submit-idea", validSessionPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.SurfSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Strickland Bay", resp.Title)
	// swell 50 only: 50*0.6 + (80-20)*0.4 = 54
	assert.Equal(t, 54.0, resp.TotalScore)
	assert.Equal(t, "Session recorded successfully!", resp.Message)
}

func TestCreateSessionRoundTrip(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/submit-idea", validSessionPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.SurfSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/surf-sessions/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.SurfSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Strickland Bay", got.Break)
	assert.Equal(t, "offshore, overhead sets", got.FullCommentary)
	// The persisted score matches what creation returned; it is a
	// snapshot, not recomputed on read.
	assert.Equal(t, created.TotalScore, got.TotalScore)
	require.NotNil(t, got.Zone)
	assert.Equal(t, "West End", *got.Zone)
}

func TestCreateSessionValidation(t *testing.T) {
	r, db := setupRouter(t)

	outOfRange := validSessionPayload()
	outOfRange["cost"] = 150
	w := doJSON(t, r, http.MethodPost, "/submit-idea", outOfRange, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	missingTitle := validSessionPayload()
	delete(missingTitle, "title")
	w = doJSON(t, r, http.MethodPost, "/submit-idea", missingTitle, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Rejected before any storage mutation
	var count int64
	require.NoError(t, db.Model(&models.SurfSession{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateSessionZeroCostIsValid(t *testing.T) {
	r, _ := setupRouter(t)

	payload := validSessionPayload()
	payload["cost"] = 0
	delete(payload, "swell_score")
	w := doJSON(t, r, http.MethodPost, "/submit-idea", payload, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.SurfSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 80.0, resp.TotalScore)
}

func TestListSessionsFilterAndOrder(t *testing.T) {
	r, _ := setupRouter(t)

	for _, p := range []map[string]interface{}{
		{"title": "Strickland Bay", "description": "a", "cost": 20, "estimated_return": 80}, // 60
		{"title": "Stark Bay", "description": "b", "cost": 50, "estimated_return": 50},      // 0
		{"title": "The Box", "description": "c", "cost": 80, "estimated_return": 20},        // -60
	} {
		w := doJSON(t, r, http.MethodPost, "/submit-idea", p, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/surf-sessions?min_score=0", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list models.SurfSessionList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 2, list.Count)
	assert.Equal(t, 60.0, list.Sessions[0].TotalScore)
	assert.Equal(t, 0.0, list.Sessions[1].TotalScore)

	w = doJSON(t, r, http.MethodGet, "/surf-sessions?break_name=bay&limit=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "Strickland Bay", list.Sessions[0].Break)
}

func TestGetAndDeleteSessionNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/surf-sessions/42", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/surf-sessions/42", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteSession(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/submit-idea", validSessionPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/surf-sessions/1", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doJSON(t, r, http.MethodDelete, "/surf-sessions/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
