package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Schedule struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"type:uuid;index;not null"`
	GroupID   *uuid.UUID `gorm:"type:uuid;index"`
	Title     string     `gorm:"not null"`
	StartDate time.Time
	EndDate   time.Time

	// Where day 1 begins, typically a geocoded address. Never a stop itself.
	StartName      string
	StartLatitude  float64
	StartLongitude float64

	Items []ScheduleItem `gorm:"foreignKey:ScheduleID"`
}

type ScheduleItem struct {
	BaseModel
	ScheduleID uuid.UUID `gorm:"type:uuid;index:idx_schedule_items_day;not null"`
	DayNumber  int       `gorm:"index:idx_schedule_items_day;not null"`
	OrderIndex int       `gorm:"not null"`
	ContentID  string    `gorm:"index;not null"`
	Memo       string

	// Set on the order-1 repeat of the previous day's last stop. Not a visit.
	CarryOver bool `gorm:"not null;default:false"`

	Place Place `gorm:"foreignKey:ContentID;references:ContentID"`
}
