package inspirations

import (
	"net/http"
	"strings"

	"creator-app/database"
	"creator-app/internal/domain/inspirations"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

type CreateInspirationRequest struct {
	URL      string `json:"url" binding:"required"`
	Note     string `json:"note"`
	Platform string `json:"platform"`
}

// GET /inspirations
func ListInspirations(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var out []inspirations.Inspiration
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load inspirations"})
		return
	}

	c.JSON(http.StatusOK, out)
}

// POST /inspirations
func CreateInspiration(c *gin.Context) {
	var req CreateInspirationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	insp := inspirations.Inspiration{
		ID:       uuid.NewString(),
		UserID:   userID,
		URL:      url,
		Note:     req.Note,
		Platform: req.Platform,
	}

	if err := database.DB.Create(&insp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inspiration", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, insp)
}

// DELETE /inspirations/:id
func DeleteInspiration(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&inspirations.Inspiration{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inspiration"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inspiration not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
