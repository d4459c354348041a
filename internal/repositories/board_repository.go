package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type BoardRepository interface {
	Create(ctx context.Context, board *db_models.Board) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Board, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Board, error)
	Update(ctx context.Context, board *db_models.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error

	CreateComment(ctx context.Context, comment *db_models.Comment) error
	GetComment(ctx context.Context, boardID, commentID uuid.UUID) (*db_models.Comment, error)
	ListComments(ctx context.Context, boardID uuid.UUID) ([]db_models.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (b *boardRepository) Create(ctx context.Context, board *db_models.Board) error {
	return b.db.WithContext(ctx).Omit("Author", "Comments").Create(board).Error
}

func (b *boardRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Board, error) {
	var board db_models.Board
	err := b.db.WithContext(ctx).Preload("Author").First(&board, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (b *boardRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Board, error) {
	var boards []db_models.Board
	err := b.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

func (b *boardRepository) Update(ctx context.Context, board *db_models.Board) error {
	return b.db.WithContext(ctx).
		Model(board).
		Select("title", "content", "image_urls", "updated_at").
		Updates(board).Error
}

func (b *boardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&db_models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Board{}, "id = ?", id).Error
	})
}

func (b *boardRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return b.db.WithContext(ctx).
		Model(&db_models.Board{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (b *boardRepository) CreateComment(ctx context.Context, comment *db_models.Comment) error {
	return b.db.WithContext(ctx).Omit("Author").Create(comment).Error
}

func (b *boardRepository) GetComment(ctx context.Context, boardID, commentID uuid.UUID) (*db_models.Comment, error) {
	var comment db_models.Comment
	err := b.db.WithContext(ctx).
		First(&comment, "id = ? AND board_id = ?", commentID, boardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (b *boardRepository) ListComments(ctx context.Context, boardID uuid.UUID) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := b.db.WithContext(ctx).
		Preload("Author").
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (b *boardRepository) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	return b.db.WithContext(ctx).Delete(&db_models.Comment{}, "id = ?", commentID).Error
}
