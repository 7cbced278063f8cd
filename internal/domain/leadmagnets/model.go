package leadmagnets

import "time"

// LeadMagnet is a downloadable freebie offered on the public bio page
// in exchange for an email address. The asset itself lives elsewhere;
// only its URL is stored.
type LeadMagnet struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	AssetURL    string `json:"asset_url,omitempty"`
	Active      bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Lead is one captured subscriber for a magnet.
type Lead struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MagnetID string `gorm:"type:uuid;not null;index" json:"magnet_id"`

	Email string `gorm:"not null" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
