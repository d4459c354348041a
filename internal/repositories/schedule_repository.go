package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *db_models.Schedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Schedule, error)
	ListAccessible(ctx context.Context, accountID uuid.UUID, groupIDs []uuid.UUID, page, pageSize int) ([]db_models.Schedule, error)
	Update(ctx context.Context, schedule *db_models.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error

	AppendItems(ctx context.Context, scheduleID uuid.UUID, day int, items []db_models.ScheduleItem) error
	DeleteItem(ctx context.Context, scheduleID, itemID uuid.UUID) (bool, error)
	ReplaceItems(ctx context.Context, scheduleID uuid.UUID, items []db_models.ScheduleItem) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Omit("Items").Create(schedule).Error
}

func (r *scheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Schedule, error) {
	var schedule db_models.Schedule
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC, order_index ASC")
		}).
		Preload("Items.Place").
		First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// ListAccessible pages over schedules owned by the account or shared with
// one of its groups, newest trip first.
func (r *scheduleRepository) ListAccessible(ctx context.Context, accountID uuid.UUID, groupIDs []uuid.UUID, page, pageSize int) ([]db_models.Schedule, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Schedule{})
	if len(groupIDs) > 0 {
		q = q.Where("account_id = ? OR group_id IN ?", accountID, groupIDs)
	} else {
		q = q.Where("account_id = ?", accountID)
	}

	var schedules []db_models.Schedule
	err := q.Order("start_date DESC, created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).
		Model(schedule).
		Select("title", "start_date", "end_date", "start_name", "start_latitude", "start_longitude", "updated_at").
		Updates(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("schedule_id = ?", id).Delete(&db_models.ScheduleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Schedule{}, "id = ?", id).Error
	})
}

// AppendItems adds items after the current last stop of the day, keeping
// their relative order.
func (r *scheduleRepository) AppendItems(ctx context.Context, scheduleID uuid.UUID, day int, items []db_models.ScheduleItem) error {
	if len(items) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		err := tx.Model(&db_models.ScheduleItem{}).
			Where("schedule_id = ? AND day_number = ?", scheduleID, day).
			Select("COALESCE(MAX(order_index), 0)").
			Scan(&maxOrder).Error
		if err != nil {
			return err
		}

		for i := range items {
			items[i].ScheduleID = scheduleID
			items[i].DayNumber = day
			items[i].OrderIndex = maxOrder + i + 1
		}
		return tx.Omit("Place").Create(&items).Error
	})
}

func (r *scheduleRepository) DeleteItem(ctx context.Context, scheduleID, itemID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND schedule_id = ?", itemID, scheduleID).
		Delete(&db_models.ScheduleItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ReplaceItems wipes every item of the schedule and writes items in one
// transaction. Rows are hard deleted so a re-plan leaves no history behind.
func (r *scheduleRepository) ReplaceItems(ctx context.Context, scheduleID uuid.UUID, items []db_models.ScheduleItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("schedule_id = ?", scheduleID).
			Delete(&db_models.ScheduleItem{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ScheduleID = scheduleID
		}
		return tx.Omit("Place").CreateInBatches(&items, 200).Error
	})
}
