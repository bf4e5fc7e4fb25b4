package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DougLewin/SuperWeirdOneBudFast/config"
	"github.com/DougLewin/SuperWeirdOneBudFast/models"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
)

// RecordController serves the dashboard-variant record endpoints. All
// operations are scoped to the authenticated user set by the auth
// middleware.
type RecordController struct {
	store *services.RecordStore
	db    *gorm.DB
}

func NewRecordController(store *services.RecordStore, db *gorm.DB) *RecordController {
	return &RecordController{store: store, db: db}
}

// ListRecords returns the current user's records, optionally filtered
// by publicity.
func (rc *RecordController) ListRecords(c *gin.Context) {
	uid := c.GetString("uid")

	records, err := rc.store.ListForUser(uid, c.Query("publicity"))
	if err != nil {
		config.Logger.Errorw("record listing failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records, "count": len(records)})
}

// CreateRecord saves a new record owned by the current user.
func (rc *RecordController) CreateRecord(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.ToRecord(uid)
	if err := rc.store.Save(&record); err != nil {
		config.Logger.Errorw("record save failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UpdateRecord overwrites one of the current user's records. The
// stored total score is whatever the payload carries; nothing here
// recomputes it.
func (rc *RecordController) UpdateRecord(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	var req models.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := req.ToRecord(uid)
	if err := rc.store.Update(uid, id, &record); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		config.Logger.Errorw("record update failed", "error", err, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update record: " + err.Error()})
		return
	}

	// Reload so the response carries stored values, created_at included.
	updated, err := rc.store.Get(uid, id)
	if err != nil {
		config.Logger.Errorw("record reload failed", "error", err, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load record: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteRecord removes one of the current user's records.
func (rc *RecordController) DeleteRecord(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	if err := rc.store.Delete(uid, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		config.Logger.Errorw("record delete failed", "error", err, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUser returns the current user's profile.
func (rc *RecordController) GetUser(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var user models.User
	if err := rc.db.Where("id = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		config.Logger.Errorw("user lookup failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": models.UserResponse{ID: user.ID, Email: user.Email, FullName: user.FullName},
	})
}
