package series

import (
	"errors"
	"net/http"
	"strings"

	"creator-app/database"
	"creator-app/internal/domain/series"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

type CreateSeriesRequest struct {
	Name           string `json:"name" binding:"required"`
	TargetPlatform string `json:"target_platform"`
	PlannedCount   int    `json:"planned_count"`
}

type UpdateSeriesRequest struct {
	Name           *string `json:"name"`
	TargetPlatform *string `json:"target_platform"`
	PlannedCount   *int    `json:"planned_count"`
}

// GET /series
func ListSeries(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var out []series.Series
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load series"})
		return
	}

	c.JSON(http.StatusOK, out)
}

// POST /series
func CreateSeries(c *gin.Context) {
	var req CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	s := series.Series{
		ID:             uuid.NewString(),
		UserID:         userID,
		Name:           name,
		TargetPlatform: req.TargetPlatform,
		PlannedCount:   req.PlannedCount,
	}

	if err := database.DB.Create(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create series", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, s)
}

// PUT /series/:id
func UpdateSeries(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var s series.Series
	if err := database.DB.First(&s, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load series"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		updates["name"] = name
	}
	if req.TargetPlatform != nil {
		updates["target_platform"] = *req.TargetPlatform
	}
	if req.PlannedCount != nil {
		updates["planned_count"] = *req.PlannedCount
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&series.Series{}).
			Where("id = ?", s.ID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update series"})
			return
		}
		if err := database.DB.First(&s, "id = ?", s.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload series"})
			return
		}
	}

	c.JSON(http.StatusOK, s)
}

// DELETE /series/:id
func DeleteSeries(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&series.Series{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete series"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Series not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
