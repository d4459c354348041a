package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"tripmate/internal/models/db_models"
)

type PlaceEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.PlaceEmbedding) error
	FindSimilar(ctx context.Context, vector pgvector.Vector, provider, excludeContentID string, limit int) ([]string, error)
	GetByContentID(ctx context.Context, contentID string) (*db_models.PlaceEmbedding, error)
}

type placeEmbeddingRepository struct {
	db *gorm.DB
}

func NewPlaceEmbeddingRepository(db *gorm.DB) PlaceEmbeddingRepository {
	return &placeEmbeddingRepository{db: db}
}

func (p *placeEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.PlaceEmbedding) error {
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"provider", "embedding", "updated_at"}),
	}).Create(embedding).Error
}

func (p *placeEmbeddingRepository) GetByContentID(ctx context.Context, contentID string) (*db_models.PlaceEmbedding, error) {
	var rows []db_models.PlaceEmbedding
	err := p.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// FindSimilar returns content ids ordered by cosine distance, closest first.
// Only vectors from the same provider are comparable.
func (p *placeEmbeddingRepository) FindSimilar(ctx context.Context, vector pgvector.Vector, provider, excludeContentID string, limit int) ([]string, error) {
	var ids []string

	query := `
        SELECT content_id
        FROM place_embeddings
        WHERE provider = ? AND content_id <> ?
          AND vector_dims(embedding) = vector_dims(?::vector)
        ORDER BY embedding <=> ?::vector
        LIMIT ?
    `

	err := p.db.WithContext(ctx).
		Raw(query, provider, excludeContentID, vector, vector, limit).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
