package planning

import (
	"errors"
	"net/http"
	"strings"

	"creator-app/database"
	"creator-app/internal/domain/ideas"
	"creator-app/internal/domain/planning"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var errStaleRevision = errors.New("stale revision")

// ------------------------------
// GET /cards
// ------------------------------
func ListCards(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var cards []planning.ContentCard
	if err := userCardsQuery(database.DB, userID).
		Order("column_id ASC, position ASC").
		Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cards"})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// ------------------------------
// POST /cards
// ------------------------------
func CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	card := planning.ContentCard{
		ID:          uuid.NewString(),
		UserID:      userID,
		ColumnID:    req.ColumnID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Platforms:   datatypes.NewJSONSlice(req.Platforms),
		ContentType: req.ContentType,
		SeriesID:    req.SeriesID,
	}

	// One-time prefill from an idea. The card keeps the idea id as
	// provenance but never tracks later idea edits. A vanished idea is
	// ignored and the card proceeds without the link.
	if req.IdeaID != nil && *req.IdeaID != "" {
		var idea ideas.Idea
		if err := database.DB.
			Where("id = ? AND user_id = ?", *req.IdeaID, userID).
			First(&idea).Error; err == nil {
			card.IdeaID = &idea.ID
			if card.Title == "" {
				card.Title = idea.Title
			}
			if card.Description == "" {
				card.Description = idea.RawText
			}
			if len(card.Platforms) == 0 && idea.TargetPlatform != "" {
				card.Platforms = datatypes.NewJSONSlice([]string{idea.TargetPlatform})
			}
			if card.SeriesID == nil {
				card.SeriesID = idea.SeriesID
			}
		}
	}

	if card.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if len(card.Platforms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one platform is required"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var wf planning.Workflow
		if err := tx.Preload("Columns").Where("user_id = ?", userID).First(&wf).Error; err != nil {
			return err
		}
		if !wf.HasColumn(card.ColumnID) {
			return planning.ErrUnknownColumn
		}

		if req.Position != nil {
			card.Position = *req.Position
		} else {
			n, err := columnCardCount(tx, userID, card.ColumnID, "")
			if err != nil {
				return err
			}
			card.Position = int(n)
		}

		return tx.Create(&card).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not configured"})
		case errors.Is(err, planning.ErrUnknownColumn):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown column"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, card)
}

// ------------------------------
// PUT /cards/:id
// ------------------------------
// Column and position never change here; moves go through MoveCard so
// the ordering rules stay in one place.
func UpdateCard(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCardRequest
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
	if req.Platforms != nil && len(req.Platforms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one platform is required"})
		return
	}

	var card planning.ContentCard
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&card, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		if card.Revision != *req.Revision {
			return errStaleRevision
		}

		updates := map[string]interface{}{
			"revision": card.Revision + 1,
		}
		if req.Title != nil {
			updates["title"] = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Platforms != nil {
			updates["platforms"] = datatypes.NewJSONSlice(req.Platforms)
		}
		if req.ContentType != nil {
			updates["content_type"] = *req.ContentType
		}
		if req.SeriesID != nil {
			if *req.SeriesID == "" {
				updates["series_id"] = nil
			} else {
				updates["series_id"] = *req.SeriesID
			}
		}

		if err := tx.Model(&planning.ContentCard{}).
			Where("id = ?", card.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		return tx.First(&card, "id = ?", card.ID).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		case errors.Is(err, errStaleRevision):
			c.JSON(http.StatusConflict, gin.H{"error": "Card was modified elsewhere, reload and retry"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, card)
}

// ------------------------------
// PUT /cards/:id/move
// ------------------------------
// The only sanctioned way to change a card's column or position.
func MoveCard(c *gin.Context) {
	id := c.Param("id")

	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var card planning.ContentCard
	moved := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&card, "id = ? AND user_id = ?", id, userID).Error; err != nil {
			return err
		}
		if card.Revision != *req.Revision {
			return errStaleRevision
		}

		var wf planning.Workflow
		if err := tx.Preload("Columns").Where("user_id = ?", userID).First(&wf).Error; err != nil {
			return err
		}
		if !wf.HasColumn(req.ColumnID) {
			return planning.ErrUnknownColumn
		}

		position := 0
		if req.Position != nil {
			position = *req.Position
		} else {
			n, err := columnCardCount(tx, userID, req.ColumnID, card.ID)
			if err != nil {
				return err
			}
			position = int(n)
		}

		// Dropping a card where it already sits is a no-op.
		if card.ColumnID == req.ColumnID && card.Position == position {
			return nil
		}

		moved = true
		if err := tx.Model(&planning.ContentCard{}).
			Where("id = ?", card.ID).
			Updates(map[string]interface{}{
				"column_id": req.ColumnID,
				"position":  position,
				"revision":  card.Revision + 1,
			}).Error; err != nil {
			return err
		}

		return tx.First(&card, "id = ?", card.ID).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Concurrently deleted card: the move fails and the next
			// board reload shows it gone.
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		case errors.Is(err, errStaleRevision):
			c.JSON(http.StatusConflict, gin.H{"error": "Card was modified elsewhere, reload and retry"})
		case errors.Is(err, planning.ErrUnknownColumn):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown column"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move card", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "moved": moved, "card": card})
}

// ------------------------------
// DELETE /cards/:id
// ------------------------------
// Hard delete. The client confirms destructive intent before calling.
func DeleteCard(c *gin.Context) {
	id := c.Param("id")

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&planning.ContentCard{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
