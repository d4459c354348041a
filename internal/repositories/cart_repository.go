package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type CartRepository interface {
	Create(ctx context.Context, item *db_models.CartItem) error
	Delete(ctx context.Context, accountID, itemID uuid.UUID) (bool, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.CartItem, error)
	ListByIDs(ctx context.Context, accountID uuid.UUID, itemIDs []uuid.UUID) ([]db_models.CartItem, error)
	MoveToSchedule(ctx context.Context, items []db_models.CartItem, scheduleID uuid.UUID, day int) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (c *cartRepository) Create(ctx context.Context, item *db_models.CartItem) error {
	return c.db.WithContext(ctx).Omit("Place").Create(item).Error
}

func (c *cartRepository) Delete(ctx context.Context, accountID, itemID uuid.UUID) (bool, error) {
	res := c.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", itemID, accountID).
		Delete(&db_models.CartItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (c *cartRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.CartItem, error) {
	var items []db_models.CartItem
	err := c.db.WithContext(ctx).
		Preload("Place").
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *cartRepository) ListByIDs(ctx context.Context, accountID uuid.UUID, itemIDs []uuid.UUID) ([]db_models.CartItem, error) {
	if len(itemIDs) == 0 {
		return []db_models.CartItem{}, nil
	}

	var items []db_models.CartItem
	err := c.db.WithContext(ctx).
		Where("account_id = ? AND id IN ?", accountID, itemIDs).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// MoveToSchedule appends the cart items to a schedule day in the given order
// and removes them from the cart atomically.
func (c *cartRepository) MoveToSchedule(ctx context.Context, items []db_models.CartItem, scheduleID uuid.UUID, day int) error {
	if len(items) == 0 {
		return nil
	}

	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		err := tx.Model(&db_models.ScheduleItem{}).
			Where("schedule_id = ? AND day_number = ?", scheduleID, day).
			Select("COALESCE(MAX(order_index), 0)").
			Scan(&maxOrder).Error
		if err != nil {
			return err
		}

		scheduleItems := make([]db_models.ScheduleItem, 0, len(items))
		ids := make([]uuid.UUID, 0, len(items))
		for i, it := range items {
			scheduleItems = append(scheduleItems, db_models.ScheduleItem{
				ScheduleID: scheduleID,
				DayNumber:  day,
				OrderIndex: maxOrder + i + 1,
				ContentID:  it.ContentID,
				Memo:       it.Memo,
			})
			ids = append(ids, it.ID)
		}

		if err := tx.Omit("Place").Create(&scheduleItems).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&db_models.CartItem{}).Error
	})
}
