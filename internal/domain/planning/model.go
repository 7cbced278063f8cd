package planning

import (
	"time"

	"gorm.io/datatypes"
)

// A Workflow is the ordered list of pipeline stages owned by one user.
// Columns are append-only; each carries a stable surrogate id so that
// duplicate display names stay unambiguous.
type Workflow struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;uniqueIndex:idx_workflows_user_id" json:"-"`
	Revision int    `gorm:"not null;default:0" json:"revision"`

	Columns []WorkflowColumn `gorm:"foreignKey:WorkflowID;constraint:OnDelete:CASCADE;" json:"columns"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkflowColumn struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	WorkflowID string `gorm:"type:uuid;not null;index:idx_workflow_columns_wf_pos,priority:1" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Position int    `gorm:"not null;default:0;index:idx_workflow_columns_wf_pos,priority:2" json:"position"`
}

// HasColumn reports whether columnID belongs to this workflow.
func (w *Workflow) HasColumn(columnID string) bool {
	for _, col := range w.Columns {
		if col.ID == columnID {
			return true
		}
	}
	return false
}

type ContentCard struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	ColumnID string `gorm:"type:uuid;not null;index:idx_content_cards_col_pos,priority:1" json:"column_id"`
	Position int    `gorm:"not null;default:0;index:idx_content_cards_col_pos,priority:2" json:"position"`
	Revision int    `gorm:"not null;default:0" json:"revision"`

	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `json:"description,omitempty"`
	Platforms   datatypes.JSONSlice[string] `json:"platforms"`
	ContentType string                      `json:"content_type,omitempty"`

	SeriesID *string `gorm:"type:uuid;index" json:"series_id,omitempty"`
	IdeaID   *string `gorm:"type:uuid" json:"idea_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
