package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DougLewin/SuperWeirdOneBudFast/config"
	"github.com/DougLewin/SuperWeirdOneBudFast/models"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// SessionController serves the API-variant endpoints. These are
// unauthenticated; the surf_sessions table has no owner column.
type SessionController struct {
	store *services.SessionStore
}

func NewSessionController(store *services.SessionStore) *SessionController {
	return &SessionController{store: store}
}

// Health reports service status.
func (sc *SessionController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "online",
		Message: "System operational",
		Version: Version,
	})
}

// Root is a trivial liveness endpoint.
func (sc *SessionController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

// CreateSession validates the payload, computes the total score and
// persists the session. Validation failures never reach the store.
func (sc *SessionController) CreateSession(c *gin.Context) {
	var req models.SurfSessionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total := services.CalculateScore(*req.Cost, *req.EstimatedReturn,
		req.SwellScore, req.WindScore, req.TideScore)

	session := req.ToSession(total)
	if err := sc.store.Create(&session); err != nil {
		config.Logger.Errorw("session creation failed", "error", err, "break", req.Title)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.SurfSessionResponse{
		ID:          session.ID,
		Title:       req.Title,
		Description: req.Description,
		TotalScore:  total,
		Zone:        req.Zone,
		CreatedAt:   session.CreatedAt.Format(time.RFC3339),
		Message:     "Session recorded successfully!",
	})
}

// ListSessions returns sessions matching the query filters, best
// scores first.
func (sc *SessionController) ListSessions(c *gin.Context) {
	filters := services.SessionFilters{
		Zone:      c.Query("zone"),
		BreakName: c.Query("break_name"),
	}
	if raw := c.Query("min_score"); raw != "" {
		minScore, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_score"})
			return
		}
		filters.MinScore = &minScore
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}

	sessions, err := sc.store.List(filters, limit, offset)
	if err != nil {
		config.Logger.Errorw("session listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.SurfSessionList{Sessions: sessions, Count: len(sessions)})
}

// GetSession returns a single session by id.
func (sc *SessionController) GetSession(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	session, err := sc.store.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session " + c.Param("id") + " not found"})
			return
		}
		config.Logger.Errorw("session lookup failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch session: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeleteSession removes a session by id.
func (sc *SessionController) DeleteSession(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if err := sc.store.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session " + c.Param("id") + " not found"})
			return
		}
		config.Logger.Errorw("session delete failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
