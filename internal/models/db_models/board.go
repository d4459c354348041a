package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Board struct {
	BaseModel
	AccountID uuid.UUID      `gorm:"type:uuid;index;not null"`
	Title     string         `gorm:"not null"`
	Content   string         `gorm:"type:text"`
	ImageURLs pq.StringArray `gorm:"type:text[]"`
	ViewCount int64          `gorm:"default:0"`

	Author   Account   `gorm:"foreignKey:AccountID"`
	Comments []Comment `gorm:"foreignKey:BoardID"`
}

type Comment struct {
	BaseModel
	BoardID   uuid.UUID `gorm:"type:uuid;index;not null"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	Content   string    `gorm:"type:text;not null"`

	Author Account `gorm:"foreignKey:AccountID"`
}
