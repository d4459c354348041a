package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type BoardsController struct {
	boardService services.BoardServiceInterface
}

func NewBoardsController(boardService services.BoardServiceInterface) *BoardsController {
	return &BoardsController{boardService: boardService}
}

// CreateBoard godoc
// @Summary Write a post
// @Tags Boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.BoardRequest true "Post"
// @Success 200 {object} utils.APIResponse{data=response_models.BoardDetail}
// @Router /boards [post]
func (b *BoardsController) CreateBoard(c *gin.Context) {
	var req request_models.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	board, err := b.boardService.CreateBoard(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, "Board created successfully")
}

// ListBoards godoc
// @Summary List posts
// @Tags Boards
// @Produce json
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse{data=[]response_models.BoardSummary}
// @Router /boards [get]
func (b *BoardsController) ListBoards(c *gin.Context) {
	page, pageSize, err := utils.ParsePaging(c, "10")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	boards, err := b.boardService.ListBoards(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, boards, "Boards fetched successfully")
}

// GetBoard godoc
// @Summary Read a post
// @Description Counts one view
// @Tags Boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} utils.APIResponse{data=response_models.BoardDetail}
// @Failure 404 {object} utils.APIResponse
// @Router /boards/{id} [get]
func (b *BoardsController) GetBoard(c *gin.Context) {
	board, err := b.boardService.GetBoard(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, "Board fetched successfully")
}

func (b *BoardsController) UpdateBoard(c *gin.Context) {
	var req request_models.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	board, err := b.boardService.UpdateBoard(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, "Board updated successfully")
}

func (b *BoardsController) DeleteBoard(c *gin.Context) {
	if err := b.boardService.DeleteBoard(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Board deleted successfully")
}

// AddComment godoc
// @Summary Comment on a post
// @Tags Boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Board ID"
// @Param request body request_models.CommentRequest true "Comment"
// @Success 200 {object} utils.APIResponse{data=response_models.Comment}
// @Router /boards/{id}/comments [post]
func (b *BoardsController) AddComment(c *gin.Context) {
	var req request_models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := b.boardService.AddComment(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment added successfully")
}

func (b *BoardsController) ListComments(c *gin.Context) {
	comments, err := b.boardService.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

func (b *BoardsController) DeleteComment(c *gin.Context) {
	err := b.boardService.DeleteComment(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("commentId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comment deleted successfully")
}
