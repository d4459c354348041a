package db_models

import "github.com/google/uuid"

type Favorite struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorites_account_place;not null"`
	ContentID string    `gorm:"uniqueIndex:idx_favorites_account_place;not null"`

	Place Place `gorm:"foreignKey:ContentID;references:ContentID"`
}
