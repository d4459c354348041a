package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrPlaceNotFound    = errors.New("place not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrItemNotFound     = errors.New("schedule item not found")
	ErrInvalidItinerary = errors.New("invalid itinerary input")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrBoardNotFound    = errors.New("board not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrGroupNotFound    = errors.New("group not found")
	ErrAlreadyMember    = errors.New("account is already a group member")

	ErrAIUnavailable = errors.New("ai provider is not configured")
)
