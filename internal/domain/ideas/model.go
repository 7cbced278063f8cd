package ideas

import "time"

// Idea statuses advance forward only: dumped -> refined -> planned -> scripted.
const (
	StatusDumped   = "dumped"
	StatusRefined  = "refined"
	StatusPlanned  = "planned"
	StatusScripted = "scripted"
)

type Idea struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"-"`

	Title          string `gorm:"not null" json:"title"`
	RawText        string `json:"raw_text,omitempty"`
	TargetPlatform string `json:"target_platform,omitempty"`
	Status         string `gorm:"not null;default:'dumped'" json:"status"`

	SeriesID *string `gorm:"type:uuid;index" json:"series_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NextStatus returns the status following s, or ok=false when s is
// terminal or unknown.
func NextStatus(s string) (string, bool) {
	switch s {
	case StatusDumped:
		return StatusRefined, true
	case StatusRefined:
		return StatusPlanned, true
	case StatusPlanned:
		return StatusScripted, true
	default:
		return "", false
	}
}

func ValidStatus(s string) bool {
	switch s {
	case StatusDumped, StatusRefined, StatusPlanned, StatusScripted:
		return true
	}
	return false
}
