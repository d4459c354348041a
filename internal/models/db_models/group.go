package db_models

import "github.com/google/uuid"

const (
	GroupRoleOwner  = "owner"
	GroupRoleMember = "member"
)

type Group struct {
	BaseModel
	Name    string    `gorm:"not null"`
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null"`

	Members []GroupMember `gorm:"foreignKey:GroupID"`
}

type GroupMember struct {
	BaseModel
	GroupID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_group_members_pair;not null"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_group_members_pair;not null"`
	Role      string    `gorm:"default:member"`

	Account Account `gorm:"foreignKey:AccountID"`
}
