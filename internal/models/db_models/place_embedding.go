package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// PlaceEmbedding keeps one vector per place. The column has no fixed
// dimension because OpenAI and Gemini embeddings differ in size.
type PlaceEmbedding struct {
	ContentID string          `gorm:"primaryKey;column:content_id"`
	Provider  string          `gorm:"not null"`
	Embedding pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}
