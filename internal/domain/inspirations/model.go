package inspirations

import "time"

// Inspiration is a saved reference: a URL plus the creator's note on
// why it was worth keeping. The platform tag is user-supplied, the
// backend does no URL sniffing.
type Inspiration struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	URL      string `gorm:"not null" json:"url"`
	Note     string `json:"note,omitempty"`
	Platform string `json:"platform,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
