package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type BoardServiceInterface interface {
	CreateBoard(ctx context.Context, accountID string, request request_models.BoardRequest) (*response_models.BoardDetail, error)
	ListBoards(ctx context.Context, page, pageSize int) ([]response_models.BoardSummary, error)
	GetBoard(ctx context.Context, boardID string) (*response_models.BoardDetail, error)
	UpdateBoard(ctx context.Context, accountID, boardID string, request request_models.BoardRequest) (*response_models.BoardDetail, error)
	DeleteBoard(ctx context.Context, accountID, boardID string) error

	AddComment(ctx context.Context, accountID, boardID string, request request_models.CommentRequest) (*response_models.Comment, error)
	ListComments(ctx context.Context, boardID string) ([]response_models.Comment, error)
	DeleteComment(ctx context.Context, accountID, boardID, commentID string) error
}

type BoardService struct {
	boardRepo   repositories.BoardRepository
	accountRepo repositories.AccountRepository
}

func NewBoardService(boardRepo repositories.BoardRepository, accountRepo repositories.AccountRepository) BoardServiceInterface {
	return &BoardService{boardRepo: boardRepo, accountRepo: accountRepo}
}

func (b *BoardService) CreateBoard(ctx context.Context, accountID string, request request_models.BoardRequest) (*response_models.BoardDetail, error) {
	author, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(request.Title) == "" {
		return nil, utils.ErrInvalidInput
	}

	board := &db_models.Board{
		AccountID: author,
		Title:     strings.TrimSpace(request.Title),
		Content:   request.Content,
		ImageURLs: request.ImageURLs,
	}
	if err := b.boardRepo.Create(ctx, board); err != nil {
		zap.L().Error("create board", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	account, err := b.accountRepo.FindById(ctx, accountID)
	if err != nil {
		zap.L().Warn("load board author", zap.String("account_id", accountID), zap.Error(err))
	} else if account != nil {
		board.Author = *account
	}
	return boardDetail(board), nil
}

func (b *BoardService) ListBoards(ctx context.Context, page, pageSize int) ([]response_models.BoardSummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	boards, err := b.boardRepo.List(ctx, page, pageSize)
	if err != nil {
		zap.L().Error("list boards", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BoardSummary, 0, len(boards))
	for i := range boards {
		out = append(out, boardSummary(&boards[i]))
	}
	return out, nil
}

// GetBoard counts a view before returning the post.
func (b *BoardService) GetBoard(ctx context.Context, boardID string) (*response_models.BoardDetail, error) {
	board, err := b.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if err := b.boardRepo.IncrementViews(ctx, board.ID); err != nil {
		zap.L().Warn("increment board views", zap.String("board_id", boardID), zap.Error(err))
	} else {
		board.ViewCount++
	}
	return boardDetail(board), nil
}

func (b *BoardService) UpdateBoard(ctx context.Context, accountID, boardID string, request request_models.BoardRequest) (*response_models.BoardDetail, error) {
	board, err := b.findOwnBoard(ctx, accountID, boardID)
	if err != nil {
		return nil, err
	}

	board.Title = strings.TrimSpace(request.Title)
	board.Content = request.Content
	board.ImageURLs = request.ImageURLs
	if board.Title == "" {
		return nil, utils.ErrInvalidInput
	}

	if err := b.boardRepo.Update(ctx, board); err != nil {
		zap.L().Error("update board", zap.String("board_id", boardID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return boardDetail(board), nil
}

func (b *BoardService) DeleteBoard(ctx context.Context, accountID, boardID string) error {
	board, err := b.findOwnBoard(ctx, accountID, boardID)
	if err != nil {
		return err
	}

	if err := b.boardRepo.Delete(ctx, board.ID); err != nil {
		zap.L().Error("delete board", zap.String("board_id", boardID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BoardService) AddComment(ctx context.Context, accountID, boardID string, request request_models.CommentRequest) (*response_models.Comment, error) {
	author, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}
	board, err := b.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(request.Content) == "" {
		return nil, utils.ErrInvalidInput
	}

	comment := &db_models.Comment{BoardID: board.ID, AccountID: author, Content: request.Content}
	if err := b.boardRepo.CreateComment(ctx, comment); err != nil {
		zap.L().Error("create comment", zap.String("board_id", boardID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if account, err := b.accountRepo.FindById(ctx, accountID); err == nil && account != nil {
		comment.Author = *account
	}
	res := commentResponse(comment)
	return &res, nil
}

func (b *BoardService) ListComments(ctx context.Context, boardID string) ([]response_models.Comment, error) {
	board, err := b.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	comments, err := b.boardRepo.ListComments(ctx, board.ID)
	if err != nil {
		zap.L().Error("list comments", zap.String("board_id", boardID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Comment, 0, len(comments))
	for i := range comments {
		out = append(out, commentResponse(&comments[i]))
	}
	return out, nil
}

func (b *BoardService) DeleteComment(ctx context.Context, accountID, boardID, commentID string) error {
	caller, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return err
	}
	bID, err := parseID(boardID, utils.ErrBoardNotFound)
	if err != nil {
		return err
	}
	cID, err := parseID(commentID, utils.ErrCommentNotFound)
	if err != nil {
		return err
	}

	comment, err := b.boardRepo.GetComment(ctx, bID, cID)
	if err != nil {
		zap.L().Error("get comment", zap.String("comment_id", commentID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if comment == nil {
		return utils.ErrCommentNotFound
	}
	if comment.AccountID != caller {
		return utils.ErrForbidden
	}

	if err := b.boardRepo.DeleteComment(ctx, comment.ID); err != nil {
		zap.L().Error("delete comment", zap.String("comment_id", commentID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BoardService) findBoard(ctx context.Context, boardID string) (*db_models.Board, error) {
	id, err := parseID(boardID, utils.ErrBoardNotFound)
	if err != nil {
		return nil, err
	}
	board, err := b.boardRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("get board", zap.String("board_id", boardID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if board == nil {
		return nil, utils.ErrBoardNotFound
	}
	return board, nil
}

func (b *BoardService) findOwnBoard(ctx context.Context, accountID, boardID string) (*db_models.Board, error) {
	caller, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}
	board, err := b.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board.AccountID != caller {
		return nil, utils.ErrForbidden
	}
	return board, nil
}

func boardSummary(board *db_models.Board) response_models.BoardSummary {
	return response_models.BoardSummary{
		ID:         board.ID.String(),
		Title:      board.Title,
		AuthorName: board.Author.Name,
		ViewCount:  board.ViewCount,
		CreatedAt:  formatUnix(board.CreatedAt),
	}
}

func boardDetail(board *db_models.Board) *response_models.BoardDetail {
	images := []string(board.ImageURLs)
	if images == nil {
		images = []string{}
	}
	return &response_models.BoardDetail{
		BoardSummary: boardSummary(board),
		AuthorID:     board.AccountID.String(),
		Content:      board.Content,
		ImageURLs:    images,
	}
}

func commentResponse(comment *db_models.Comment) response_models.Comment {
	return response_models.Comment{
		ID:         comment.ID.String(),
		AuthorID:   comment.AccountID.String(),
		AuthorName: comment.Author.Name,
		Content:    comment.Content,
		CreatedAt:  formatUnix(comment.CreatedAt),
	}
}

