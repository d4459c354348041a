package db_models

import "github.com/google/uuid"

type CartItem struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	ContentID string    `gorm:"not null"`
	Memo      string

	Place Place `gorm:"foreignKey:ContentID;references:ContentID"`
}
