package templates

import "time"

// ContentTemplate is a reusable scaffold (hook, structure, outline) a
// creator applies when drafting new content.
type ContentTemplate struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Name         string `gorm:"not null" json:"name"`
	TitlePattern string `json:"title_pattern,omitempty"`
	Body         string `json:"body,omitempty"`
	Platform     string `json:"platform,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
