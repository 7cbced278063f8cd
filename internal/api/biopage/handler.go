package biopage

import (
	"errors"
	"net/http"
	"strings"

	"creator-app/database"
	"creator-app/internal/domain/biopage"

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

type CreateLinkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required"`
}

type UpdateLinkRequest struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
}

type ReorderLinksRequest struct {
	LinkIDs []string `json:"link_ids" binding:"required"` // ordered list
}

// GET /links
func ListLinks(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var links []biopage.BioLink
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&links).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load links"})
		return
	}

	c.JSON(http.StatusOK, links)
}

// POST /links
func CreateLink(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	title := strings.TrimSpace(req.Title)
	url := strings.TrimSpace(req.URL)
	if title == "" || url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and URL are required"})
		return
	}

	var link biopage.BioLink
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&biopage.BioLink{}).
			Where("user_id = ?", userID).
			Count(&n).Error; err != nil {
			return err
		}

		link = biopage.BioLink{
			ID:       uuid.NewString(),
			UserID:   userID,
			Title:    title,
			URL:      url,
			Position: int(n),
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, link)
}

// PUT /links/:id
func UpdateLink(c *gin.Context) {
	id := c.Param("id")

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var link biopage.BioLink
	if err := database.DB.First(&link, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load link"})
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
	if req.URL != nil {
		url := strings.TrimSpace(*req.URL)
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
			return
		}
		updates["url"] = url
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&biopage.BioLink{}).
			Where("id = ?", link.ID).
			Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update link"})
			return
		}
		if err := database.DB.First(&link, "id = ?", link.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload link"})
			return
		}
	}

	c.JSON(http.StatusOK, link)
}

// PUT /links/reorder
func ReorderLinks(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req ReorderLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.LinkIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "link_ids required"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for i, linkID := range req.LinkIDs {
			if err := tx.Model(&biopage.BioLink{}).
				Where("id = ? AND user_id = ?", linkID, userID).
				Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder links", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /links/:id
func DeleteLink(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&biopage.BioLink{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
