package utils

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// serviceErrors is checked in order; the first errors.Is match wins.
var serviceErrors = []struct {
	err     error
	code    int
	message string
}{
	{ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrInvalidItinerary, http.StatusBadRequest, "Invalid itinerary input"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{ErrForbidden, http.StatusForbidden, "You do not have access to this resource"},
	{ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{ErrPlaceNotFound, http.StatusNotFound, "Place not found"},
	{ErrScheduleNotFound, http.StatusNotFound, "Schedule not found"},
	{ErrItemNotFound, http.StatusNotFound, "Schedule item not found"},
	{ErrCartItemNotFound, http.StatusNotFound, "Cart item not found"},
	{ErrBoardNotFound, http.StatusNotFound, "Board not found"},
	{ErrCommentNotFound, http.StatusNotFound, "Comment not found"},
	{ErrGroupNotFound, http.StatusNotFound, "Group not found"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Email already exists"},
	{ErrAlreadyMember, http.StatusConflict, "Account is already a member of this group"},
	{ErrAIUnavailable, http.StatusServiceUnavailable, "AI provider is not configured"},
}

func HandleServiceError(c *gin.Context, err error) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			RespondError(c, se.code, se.message)
			return
		}
	}

	if errors.Is(err, ErrDatabaseError) {
		zap.L().Error("database error", zap.String("trace_id", traceIDFrom(c)), zap.Error(err))
	} else {
		zap.L().Error("unknown error", zap.String("trace_id", traceIDFrom(c)), zap.Error(err))
	}
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}

// ParsePaging reads page/pageSize query parameters with the given default page size.
func ParsePaging(c *gin.Context, defaultPageSize string) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, ErrInvalidPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", defaultPageSize))
	if err != nil || pageSize < 1 || pageSize > 100 {
		return 0, 0, ErrInvalidPageSize
	}

	return page, pageSize, nil
}
