package leadmagnets

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"creator-app/database"
	"creator-app/internal/domain/leadmagnets"
	"creator-app/internal/domain/users"

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

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type CreateMagnetRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	AssetURL    string `json:"asset_url"`
	Active      *bool  `json:"active"`
}

type UpdateMagnetRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AssetURL    *string `json:"asset_url"`
	Active      *bool   `json:"active"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// GET /magnets
func ListMagnets(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var magnets []leadmagnets.LeadMagnet
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&magnets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lead magnets"})
		return
	}

	c.JSON(http.StatusOK, magnets)
}

// POST /magnets
func CreateMagnet(c *gin.Context) {
	var req CreateMagnetRequest
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

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	magnet := leadmagnets.LeadMagnet{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		AssetURL:    req.AssetURL,
		Active:      active,
	}

	if err := database.DB.Create(&magnet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead magnet", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, magnet)
}

// PUT /magnets/:id
func UpdateMagnet(c *gin.Context) {
	id := c.Param("id")

	var req UpdateMagnetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var magnet leadmagnets.LeadMagnet
	if err := database.DB.First(&magnet, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead magnet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lead magnet"})
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		updates["title"] = title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.AssetURL != nil {
		updates["asset_url"] = *req.AssetURL
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&leadmagnets.LeadMagnet{}).
			Where("id = ?", magnet.ID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead magnet"})
			return
		}
		if err := database.DB.First(&magnet, "id = ?", magnet.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload lead magnet"})
			return
		}
	}

	c.JSON(http.StatusOK, magnet)
}

// DELETE /magnets/:id
func DeleteMagnet(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&leadmagnets.LeadMagnet{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead magnet"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead magnet not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GET /magnets/:id/leads
func ListLeads(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var magnet leadmagnets.LeadMagnet
	if err := database.DB.First(&magnet, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead magnet not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lead magnet"})
		return
	}

	var leads []leadmagnets.Lead
	if err := database.DB.
		Where("magnet_id = ?", magnet.ID).
		Order("created_at DESC").
		Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"magnet": magnet, "leads": leads, "total": len(leads)})
}

// POST /p/:slug/magnets/:id/subscribe
// Public lead capture from a creator's bio page.
func Subscribe(c *gin.Context) {
	slug := c.Param("slug")
	magnetID := c.Param("id")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	var owner users.User
	if err := database.DB.Where("page_slug = ?", slug).First(&owner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var magnet leadmagnets.LeadMagnet
	if err := database.DB.
		First(&magnet, "id = ? AND user_id = ? AND active = ?", magnetID, owner.ID, true).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead magnet not found"})
		return
	}

	lead := leadmagnets.Lead{
		MagnetID: magnet.ID,
		Email:    email,
	}
	if err := database.DB.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "subscribed", "asset_url": magnet.AssetURL})
}
