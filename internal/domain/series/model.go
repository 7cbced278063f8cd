package series

import "time"

// Series groups planned content into a named run (e.g. a 10-part video
// series). Cards and ideas reference it by id for labeling only.
type Series struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Name           string `gorm:"not null" json:"name"`
	TargetPlatform string `json:"target_platform,omitempty"`
	PlannedCount   int    `gorm:"not null;default:0" json:"planned_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
