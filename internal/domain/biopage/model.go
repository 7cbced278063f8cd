package biopage

import "time"

// BioLink is one entry on a creator's public link-in-bio page.
type BioLink struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index:idx_bio_links_user_pos,priority:1" json:"-"`

	Title    string `gorm:"not null" json:"title"`
	URL      string `gorm:"not null" json:"url"`
	Position int    `gorm:"not null;default:0;index:idx_bio_links_user_pos,priority:2" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
