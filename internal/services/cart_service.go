package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type CartServiceInterface interface {
	AddItem(ctx context.Context, accountID string, request request_models.AddCartItemRequest) (*response_models.CartItem, error)
	RemoveItem(ctx context.Context, accountID, itemID string) error
	ListItems(ctx context.Context, accountID string) ([]response_models.CartItem, error)
	MoveToSchedule(ctx context.Context, accountID string, request request_models.CartToScheduleRequest) error
}

type CartService struct {
	cartRepo     repositories.CartRepository
	placeRepo    repositories.PlaceRepository
	scheduleRepo repositories.ScheduleRepository
	groupRepo    repositories.GroupRepository
}

func NewCartService(
	cartRepo repositories.CartRepository,
	placeRepo repositories.PlaceRepository,
	scheduleRepo repositories.ScheduleRepository,
	groupRepo repositories.GroupRepository,
) CartServiceInterface {
	return &CartService{
		cartRepo:     cartRepo,
		placeRepo:    placeRepo,
		scheduleRepo: scheduleRepo,
		groupRepo:    groupRepo,
	}
}

func (c *CartService) AddItem(ctx context.Context, accountID string, request request_models.AddCartItemRequest) (*response_models.CartItem, error) {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}

	place, err := c.placeRepo.GetByContentID(ctx, request.ContentID)
	if err != nil {
		zap.L().Error("get place", zap.String("content_id", request.ContentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	item := &db_models.CartItem{AccountID: owner, ContentID: place.ContentID, Memo: request.Memo}
	if err := c.cartRepo.Create(ctx, item); err != nil {
		zap.L().Error("create cart item", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CartItem{
		ID:    item.ID.String(),
		Memo:  item.Memo,
		Place: toPlaceResponse(*place),
	}, nil
}

func (c *CartService) RemoveItem(ctx context.Context, accountID, itemID string) error {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return err
	}
	id, err := parseID(itemID, utils.ErrCartItemNotFound)
	if err != nil {
		return err
	}

	removed, err := c.cartRepo.Delete(ctx, owner, id)
	if err != nil {
		zap.L().Error("delete cart item", zap.String("item_id", itemID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !removed {
		return utils.ErrCartItemNotFound
	}
	return nil
}

func (c *CartService) ListItems(ctx context.Context, accountID string) ([]response_models.CartItem, error) {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}

	items, err := c.cartRepo.ListByAccount(ctx, owner)
	if err != nil {
		zap.L().Error("list cart items", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, response_models.CartItem{
			ID:    it.ID.String(),
			Memo:  it.Memo,
			Place: toPlaceResponse(it.Place),
		})
	}
	return out, nil
}

// MoveToSchedule appends the selected cart items to one schedule day, in the
// order they were listed, and empties them from the cart.
func (c *CartService) MoveToSchedule(ctx context.Context, accountID string, request request_models.CartToScheduleRequest) error {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return err
	}
	scheduleID, err := parseID(request.ScheduleID, utils.ErrScheduleNotFound)
	if err != nil {
		return err
	}

	schedule, err := loadAccessibleSchedule(ctx, c.scheduleRepo, c.groupRepo, owner, scheduleID)
	if err != nil {
		return err
	}
	if request.Day < 1 || request.Day > scheduleDayCount(schedule) {
		return utils.ErrInvalidInput
	}

	itemIDs := make([]uuid.UUID, 0, len(request.ItemIDs))
	for _, raw := range uniqueIDs(request.ItemIDs) {
		id, err := parseID(raw, utils.ErrCartItemNotFound)
		if err != nil {
			return err
		}
		itemIDs = append(itemIDs, id)
	}

	found, err := c.cartRepo.ListByIDs(ctx, owner, itemIDs)
	if err != nil {
		zap.L().Error("list cart items by id", zap.String("account_id", accountID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	byID := make(map[uuid.UUID]db_models.CartItem, len(found))
	for _, it := range found {
		byID[it.ID] = it
	}

	planned := make(map[string]bool)
	for _, it := range schedule.Items {
		if it.DayNumber == request.Day && !it.CarryOver {
			planned[it.ContentID] = true
		}
	}

	ordered := make([]db_models.CartItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		it, ok := byID[id]
		if !ok {
			return utils.ErrCartItemNotFound
		}
		if planned[it.ContentID] {
			return fmt.Errorf("%w: place %s already planned on day %d", utils.ErrInvalidInput, it.ContentID, request.Day)
		}
		planned[it.ContentID] = true
		ordered = append(ordered, it)
	}

	if err := c.cartRepo.MoveToSchedule(ctx, ordered, schedule.ID, request.Day); err != nil {
		zap.L().Error("move cart items to schedule", zap.String("schedule_id", request.ScheduleID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}
