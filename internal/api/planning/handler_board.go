package planning

import (
	"errors"
	"net/http"

	"creator-app/database"
	"creator-app/internal/domain/planning"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /board
// ------------------------------
// Returns the workflow plus cards grouped per column in display order.
// Grouping is recomputed from live workflow + card state on every call,
// so this endpoint is also the reconciliation point after a move: the
// client reloads it on success and on failure alike.
func GetBoard(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var wf planning.Workflow
	if err := userWorkflowQuery(database.DB, userID).First(&wf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load workflow"})
		return
	}

	var cards []planning.ContentCard
	if err := userCardsQuery(database.DB, userID).Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cards"})
		return
	}

	byID := make(map[string]planning.ContentCard, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}

	view := planning.BuildView(wf.Columns, cards)
	colByID := make(map[string]planning.WorkflowColumn, len(wf.Columns))
	for _, col := range wf.Columns {
		colByID[col.ID] = col
	}

	out := BoardResponse{Workflow: wf, Columns: make([]BoardColumnDTO, 0, len(view))}
	for _, cc := range view {
		dto := BoardColumnDTO{
			Column: colByID[cc.ColumnID],
			Cards:  make([]planning.ContentCard, 0, len(cc.CardIDs)),
		}
		for _, cardID := range cc.CardIDs {
			dto.Cards = append(dto.Cards, byID[cardID])
		}
		out.Columns = append(out.Columns, dto)
	}

	c.JSON(http.StatusOK, out)
}
