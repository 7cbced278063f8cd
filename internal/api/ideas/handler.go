package ideas

import (
	"errors"
	"net/http"
	"strings"

	"creator-app/database"
	"creator-app/internal/domain/ideas"

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

type CreateIdeaRequest struct {
	Title          string  `json:"title" binding:"required"`
	RawText        string  `json:"raw_text"`
	TargetPlatform string  `json:"target_platform"`
	SeriesID       *string `json:"series_id"`
}

type UpdateIdeaRequest struct {
	Title          *string `json:"title"`
	RawText        *string `json:"raw_text"`
	TargetPlatform *string `json:"target_platform"`
	SeriesID       *string `json:"series_id"`
}

// GET /ideas
func ListIdeas(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var out []ideas.Idea
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ideas"})
		return
	}

	c.JSON(http.StatusOK, out)
}

// POST /ideas
func CreateIdea(c *gin.Context) {
	var req CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	idea := ideas.Idea{
		ID:             uuid.NewString(),
		UserID:         userID,
		Title:          title,
		RawText:        req.RawText,
		TargetPlatform: req.TargetPlatform,
		Status:         ideas.StatusDumped,
		SeriesID:       req.SeriesID,
	}

	if err := database.DB.Create(&idea).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create idea", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, idea)
}

// PUT /ideas/:id
func UpdateIdea(c *gin.Context) {
	id := c.Param("id")

	var req UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	var idea ideas.Idea
	if err := database.DB.First(&idea, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.RawText != nil {
		updates["raw_text"] = *req.RawText
	}
	if req.TargetPlatform != nil {
		updates["target_platform"] = *req.TargetPlatform
	}
	if req.SeriesID != nil {
		if *req.SeriesID == "" {
			updates["series_id"] = nil
		} else {
			updates["series_id"] = *req.SeriesID
		}
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&ideas.Idea{}).
			Where("id = ?", idea.ID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update idea"})
			return
		}
		if err := database.DB.First(&idea, "id = ?", idea.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload idea"})
			return
		}
	}

	c.JSON(http.StatusOK, idea)
}

// POST /ideas/:id/advance
// Moves the idea one step along dumped -> refined -> planned -> scripted.
func AdvanceIdea(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var idea ideas.Idea
	if err := database.DB.First(&idea, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load idea"})
		return
	}

	next, ok := ideas.NextStatus(idea.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Idea is already at its final status"})
		return
	}

	if err := database.DB.Model(&ideas.Idea{}).
		Where("id = ?", idea.ID).
		Update("status", next).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to advance idea"})
		return
	}

	idea.Status = next
	c.JSON(http.StatusOK, idea)
}

// DELETE /ideas/:id
func DeleteIdea(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&ideas.Idea{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete idea"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
