package templates

import (
	"errors"
	"net/http"
	"strings"

	"creator-app/database"
	"creator-app/internal/domain/templates"

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

type CreateTemplateRequest struct {
	Name         string `json:"name" binding:"required"`
	TitlePattern string `json:"title_pattern"`
	Body         string `json:"body"`
	Platform     string `json:"platform"`
}

type UpdateTemplateRequest struct {
	Name         *string `json:"name"`
	TitlePattern *string `json:"title_pattern"`
	Body         *string `json:"body"`
	Platform     *string `json:"platform"`
}

// GET /templates
func ListTemplates(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var out []templates.ContentTemplate
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load templates"})
		return
	}

	c.JSON(http.StatusOK, out)
}

// POST /templates
func CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
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

	tpl := templates.ContentTemplate{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         name,
		TitlePattern: req.TitlePattern,
		Body:         req.Body,
		Platform:     req.Platform,
	}

	if err := database.DB.Create(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tpl)
}

// PUT /templates/:id
func UpdateTemplate(c *gin.Context) {
	id := c.Param("id")

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var tpl templates.ContentTemplate
	if err := database.DB.First(&tpl, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load template"})
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
	if req.TitlePattern != nil {
		updates["title_pattern"] = *req.TitlePattern
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Platform != nil {
		updates["platform"] = *req.Platform
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&templates.ContentTemplate{}).
			Where("id = ?", tpl.ID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
			return
		}
		if err := database.DB.First(&tpl, "id = ?", tpl.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload template"})
			return
		}
	}

	c.JSON(http.StatusOK, tpl)
}

// DELETE /templates/:id
func DeleteTemplate(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&templates.ContentTemplate{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
