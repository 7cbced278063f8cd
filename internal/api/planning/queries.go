package planning

import (
	"creator-app/internal/domain/planning"

	"gorm.io/gorm"
)

func userWorkflowQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&planning.Workflow{}).
		Where("user_id = ?", userID).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func userCardsQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&planning.ContentCard{}).
		Where("user_id = ?", userID)
}

// columnCardCount counts the cards in a column, optionally excluding
// one card id (the card being moved within its own column).
func columnCardCount(db *gorm.DB, userID uint, columnID, excludeCardID string) (int64, error) {
	q := userCardsQuery(db, userID).Where("column_id = ?", columnID)
	if excludeCardID != "" {
		q = q.Where("id <> ?", excludeCardID)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}
