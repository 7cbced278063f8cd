package biopage

import (
	"errors"
	"net/http"
	"time"

	"creator-app/database"
	"creator-app/internal/domain/access"
	"creator-app/internal/domain/biopage"
	"creator-app/internal/domain/leadmagnets"
	"creator-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PublicPageResponse struct {
	Slug             string                   `json:"slug"`
	DisplayName      string                   `json:"display_name"`
	Links            []biopage.BioLink        `json:"links"`
	LeadMagnets      []leadmagnets.LeadMagnet `json:"lead_magnets"`
	PlatformBranding bool                     `json:"platform_branding"`
}

// GET /p/:slug
// Public, unauthenticated view of a creator's link-in-bio page.
func GetPublicPage(c *gin.Context) {
	slug := c.Param("slug")

	var user users.User
	if err := database.DB.
		Preload("Plan").
		Where("page_slug = ?", slug).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load page"})
		return
	}

	policy := access.ComputePolicy(time.Now(), user)
	if policy.Limits != nil && policy.Limits.HideBioPage {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var links []biopage.BioLink
	if err := database.DB.
		Where("user_id = ?", user.ID).
		Order("position ASC").
		Find(&links).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load links"})
		return
	}

	magnetQuery := database.DB.
		Where("user_id = ? AND active = ?", user.ID, true).
		Order("created_at ASC")
	if policy.Limits != nil && policy.Limits.MaxLeadMagnets > 0 {
		magnetQuery = magnetQuery.Limit(policy.Limits.MaxLeadMagnets)
	}
	var magnets []leadmagnets.LeadMagnet
	if err := magnetQuery.Find(&magnets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lead magnets"})
		return
	}

	branding := true
	for _, cap := range policy.Capabilities {
		if cap == "remove_branding" {
			branding = false
			break
		}
	}

	c.JSON(http.StatusOK, PublicPageResponse{
		Slug:             slug,
		DisplayName:      user.Name + " " + user.Lastname,
		Links:            links,
		LeadMagnets:      magnets,
		PlatformBranding: branding,
	})
}
