package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type GroupRepository interface {
	CreateWithOwner(ctx context.Context, group *db_models.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Group, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Group, error)
	ListGroupIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)

	IsMember(ctx context.Context, groupID, accountID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, member *db_models.GroupMember) error
	RemoveMember(ctx context.Context, groupID, accountID uuid.UUID) (bool, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// CreateWithOwner inserts the group and its owner membership together.
func (g *groupRepository) CreateWithOwner(ctx context.Context, group *db_models.Group) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members").Create(group).Error; err != nil {
			return err
		}
		return tx.Omit("Account").Create(&db_models.GroupMember{
			GroupID:   group.ID,
			AccountID: group.OwnerID,
			Role:      db_models.GroupRoleOwner,
		}).Error
	})
}

func (g *groupRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Group, error) {
	var group db_models.Group
	err := g.db.WithContext(ctx).
		Preload("Members.Account").
		First(&group, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (g *groupRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Group, error) {
	var groups []db_models.Group
	err := g.db.WithContext(ctx).
		Preload("Members.Account").
		Where("id IN (?)", g.db.Model(&db_models.GroupMember{}).
			Select("group_id").
			Where("account_id = ?", accountID)).
		Order("created_at ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (g *groupRepository) ListGroupIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := g.db.WithContext(ctx).
		Model(&db_models.GroupMember{}).
		Where("account_id = ?", accountID).
		Pluck("group_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (g *groupRepository) IsMember(ctx context.Context, groupID, accountID uuid.UUID) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&db_models.GroupMember{}).
		Where("group_id = ? AND account_id = ?", groupID, accountID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (g *groupRepository) AddMember(ctx context.Context, member *db_models.GroupMember) error {
	return g.db.WithContext(ctx).Omit("Account").Create(member).Error
}

// RemoveMember hard deletes so the pair can be added again later.
func (g *groupRepository) RemoveMember(ctx context.Context, groupID, accountID uuid.UUID) (bool, error) {
	res := g.db.WithContext(ctx).Unscoped().
		Where("group_id = ? AND account_id = ?", groupID, accountID).
		Delete(&db_models.GroupMember{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
