package planning

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"creator-app/database"
	"creator-app/internal/domain/planning"
	"creator-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errWorkflowExists = errors.New("workflow already configured")

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// ------------------------------
// GET /workflow
// ------------------------------
func GetWorkflow(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var wf planning.Workflow
	err := userWorkflowQuery(database.DB, userID).First(&wf).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Signals the client to run onboarding.
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load workflow"})
		return
	}

	c.JSON(http.StatusOK, wf)
}

// ------------------------------
// POST /workflow
// ------------------------------
func CreateWorkflow(c *gin.Context) {
	var req CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var names []string
	var err error
	if req.Preset != "" {
		names, err = planning.PresetColumns(req.Preset)
	} else {
		names, err = planning.NormalizeColumns(req.Columns)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wf := planning.Workflow{
		ID:     uuid.NewString(),
		UserID: userID,
	}
	for i, name := range names {
		wf.Columns = append(wf.Columns, planning.WorkflowColumn{
			ID:       uuid.NewString(),
			Name:     name,
			Position: i,
		})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var existing planning.Workflow
		err := tx.Where("user_id = ?", userID).First(&existing).Error
		if err == nil {
			return errWorkflowExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&wf).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&users.User{}).
			Where("id = ?", userID).
			Update("onboarded_at", now).Error
	})
	if err != nil {
		switch {
		// The unique index on user_id backstops concurrent onboarding
		// submissions that both pass the existence check.
		case errors.Is(err, errWorkflowExists), errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "Workflow already configured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workflow", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, wf)
}

// ------------------------------
// POST /workflow/columns
// ------------------------------
func AppendColumn(c *gin.Context) {
	var req AppendColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": planning.ErrEmptyName.Error()})
		return
	}

	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var col planning.WorkflowColumn
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var wf planning.Workflow
		if err := tx.Preload("Columns").Where("user_id = ?", userID).First(&wf).Error; err != nil {
			return err
		}

		if len(wf.Columns) >= planning.MaxColumns {
			return planning.ErrTooManyColumns
		}

		col = planning.WorkflowColumn{
			ID:         uuid.NewString(),
			WorkflowID: wf.ID,
			Name:       name,
			Position:   len(wf.Columns),
		}
		if err := tx.Create(&col).Error; err != nil {
			return err
		}

		return tx.Model(&planning.Workflow{}).
			Where("id = ?", wf.ID).
			Update("revision", gorm.Expr("revision + 1")).Error
	})

	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow not configured"})
		case errors.Is(err, planning.ErrTooManyColumns):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to append column", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, col)
}

// ------------------------------
// GET /workflow/presets
// ------------------------------
func ListPresets(c *gin.Context) {
	out := make([]gin.H, 0, len(planning.PresetKeys()))
	for _, key := range planning.PresetKeys() {
		cols, _ := planning.PresetColumns(key)
		out = append(out, gin.H{"key": key, "columns": cols})
	}
	c.JSON(http.StatusOK, out)
}
