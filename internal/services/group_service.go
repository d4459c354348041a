package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, accountID string, request request_models.CreateGroupRequest) (*response_models.Group, error)
	AddMember(ctx context.Context, accountID, groupID string, request request_models.AddGroupMemberRequest) (*response_models.Group, error)
	ListMyGroups(ctx context.Context, accountID string) ([]response_models.Group, error)
	RemoveMember(ctx context.Context, accountID, groupID, memberID string) error
}

type GroupService struct {
	groupRepo   repositories.GroupRepository
	accountRepo repositories.AccountRepository
}

func NewGroupService(groupRepo repositories.GroupRepository, accountRepo repositories.AccountRepository) GroupServiceInterface {
	return &GroupService{groupRepo: groupRepo, accountRepo: accountRepo}
}

func (g *GroupService) CreateGroup(ctx context.Context, accountID string, request request_models.CreateGroupRequest) (*response_models.Group, error) {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, utils.ErrInvalidInput
	}

	group := &db_models.Group{Name: name, OwnerID: owner}
	if err := g.groupRepo.CreateWithOwner(ctx, group); err != nil {
		zap.L().Error("create group", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return g.groupDetail(ctx, group.ID.String())
}

// AddMember is reserved to the group owner.
func (g *GroupService) AddMember(ctx context.Context, accountID, groupID string, request request_models.AddGroupMemberRequest) (*response_models.Group, error) {
	group, err := g.findGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	caller, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != caller {
		return nil, utils.ErrForbidden
	}

	account, err := g.accountRepo.FindByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		zap.L().Error("find account by email", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	for _, m := range group.Members {
		if m.AccountID == account.ID {
			return nil, utils.ErrAlreadyMember
		}
	}

	err = g.groupRepo.AddMember(ctx, &db_models.GroupMember{
		GroupID:   group.ID,
		AccountID: account.ID,
		Role:      db_models.GroupRoleMember,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrAlreadyMember
		}
		zap.L().Error("add group member", zap.String("group_id", groupID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return g.groupDetail(ctx, groupID)
}

func (g *GroupService) ListMyGroups(ctx context.Context, accountID string) ([]response_models.Group, error) {
	member, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}

	groups, err := g.groupRepo.ListByAccount(ctx, member)
	if err != nil {
		zap.L().Error("list groups", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Group, 0, len(groups))
	for i := range groups {
		out = append(out, groupResponse(&groups[i]))
	}
	return out, nil
}

// RemoveMember lets the owner remove anyone but themselves, and any member
// leave on their own.
func (g *GroupService) RemoveMember(ctx context.Context, accountID, groupID, memberID string) error {
	group, err := g.findGroup(ctx, groupID)
	if err != nil {
		return err
	}
	caller, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return err
	}
	target, err := parseID(memberID, utils.ErrAccountNotFound)
	if err != nil {
		return err
	}

	if caller != group.OwnerID && caller != target {
		return utils.ErrForbidden
	}
	if target == group.OwnerID {
		return utils.ErrInvalidInput
	}

	removed, err := g.groupRepo.RemoveMember(ctx, group.ID, target)
	if err != nil {
		zap.L().Error("remove group member", zap.String("group_id", groupID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !removed {
		return utils.ErrAccountNotFound
	}
	return nil
}

func (g *GroupService) findGroup(ctx context.Context, groupID string) (*db_models.Group, error) {
	id, err := parseID(groupID, utils.ErrGroupNotFound)
	if err != nil {
		return nil, err
	}
	group, err := g.groupRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("get group", zap.String("group_id", groupID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if group == nil {
		return nil, utils.ErrGroupNotFound
	}
	return group, nil
}

func (g *GroupService) groupDetail(ctx context.Context, groupID string) (*response_models.Group, error) {
	group, err := g.findGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	res := groupResponse(group)
	return &res, nil
}

func groupResponse(group *db_models.Group) response_models.Group {
	members := make([]response_models.GroupMember, 0, len(group.Members))
	for _, m := range group.Members {
		members = append(members, response_models.GroupMember{
			AccountID: m.AccountID.String(),
			Name:      m.Account.Name,
			Email:     m.Account.Email,
			Role:      m.Role,
		})
	}
	return response_models.Group{
		ID:      group.ID.String(),
		Name:    group.Name,
		OwnerID: group.OwnerID.String(),
		Members: members,
	}
}
