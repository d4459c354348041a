package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tripmate/internal/models/db_models"
)

type PlaceRepository interface {
	Upsert(ctx context.Context, place *db_models.Place) error
	GetByContentID(ctx context.Context, contentID string) (*db_models.Place, error)
	ListByContentIDs(ctx context.Context, contentIDs []string) ([]db_models.Place, error)
	Search(ctx context.Context, category, keyword string, page, pageSize int) ([]db_models.Place, error)
	ListInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64, limit int) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// Upsert inserts a place or refreshes every provider-owned column of the
// row with the same content id.
func (r *placeRepository) Upsert(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "address", "latitude", "longitude", "category",
			"image_url", "overview", "tags", "updated_at",
		}),
	}).Create(place).Error
}

func (r *placeRepository) GetByContentID(ctx context.Context, contentID string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "content_id = ?", contentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) ListByContentIDs(ctx context.Context, contentIDs []string) ([]db_models.Place, error) {
	if len(contentIDs) == 0 {
		return []db_models.Place{}, nil
	}

	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("content_id IN ?", contentIDs).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) Search(ctx context.Context, category, keyword string, page, pageSize int) ([]db_models.Place, error) {
	q := r.db.WithContext(ctx).Model(&db_models.Place{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if kw := strings.TrimSpace(keyword); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(address) LIKE ? OR ? = ANY(tags)", like, like, kw)
	}

	var places []db_models.Place
	err := q.Order("title ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListInBox(ctx context.Context, minLat, maxLat, minLng, maxLng float64, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Where("longitude BETWEEN ? AND ?", minLng, maxLng).
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
