package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tripmate/internal/models/db_models"
)

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *db_models.Favorite) error
	Delete(ctx context.Context, accountID uuid.UUID, contentID string) (bool, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add is a no-op when the pair already exists.
func (f *favoriteRepository) Add(ctx context.Context, favorite *db_models.Favorite) error {
	return f.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("Place").
		Create(favorite).Error
}

func (f *favoriteRepository) Delete(ctx context.Context, accountID uuid.UUID, contentID string) (bool, error) {
	res := f.db.WithContext(ctx).Unscoped().
		Where("account_id = ? AND content_id = ?", accountID, contentID).
		Delete(&db_models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (f *favoriteRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Favorite, error) {
	var favorites []db_models.Favorite
	err := f.db.WithContext(ctx).
		Preload("Place").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
