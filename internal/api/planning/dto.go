package planning

import (
	"creator-app/internal/domain/planning"
)

// ---------- requests

type CreateWorkflowRequest struct {
	// Either a preset key or an explicit column list (2..7 names).
	Preset  string   `json:"preset"`
	Columns []string `json:"columns"`
}

type AppendColumnRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateCardRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ColumnID    string   `json:"column_id" binding:"required"`
	Platforms   []string `json:"platforms"`
	ContentType string   `json:"content_type"`
	SeriesID    *string  `json:"series_id"`
	IdeaID      *string  `json:"idea_id"`
	Position    *int     `json:"position"`
}

type UpdateCardRequest struct {
	Revision *int `json:"revision" binding:"required"`

	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Platforms   []string `json:"platforms"`
	ContentType *string  `json:"content_type"`
	SeriesID    *string  `json:"series_id"`
}

type MoveCardRequest struct {
	Revision *int   `json:"revision" binding:"required"`
	ColumnID string `json:"column_id" binding:"required"`
	// Optional explicit position; defaults to the end of the target column.
	Position *int `json:"position"`
}

// ---------- responses

type BoardColumnDTO struct {
	Column planning.WorkflowColumn `json:"column"`
	Cards  []planning.ContentCard  `json:"cards"`
}

type BoardResponse struct {
	Workflow planning.Workflow `json:"workflow"`
	Columns  []BoardColumnDTO  `json:"columns"`
}
