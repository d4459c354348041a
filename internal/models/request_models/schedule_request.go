package request_models

import "time"

type StartLocation struct {
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

type CreateScheduleRequest struct {
	Title     string        `json:"title" binding:"required"`
	StartDate time.Time     `json:"start_date" binding:"required"`
	EndDate   time.Time     `json:"end_date" binding:"required"`
	Start     StartLocation `json:"start" binding:"required"`
	GroupID   string        `json:"group_id" binding:"omitempty,uuid"`
}

type UpdateScheduleRequest struct {
	Title     string         `json:"title"`
	StartDate *time.Time     `json:"start_date"`
	EndDate   *time.Time     `json:"end_date"`
	Start     *StartLocation `json:"start"`
}

type AddScheduleItemRequest struct {
	ContentID string `json:"content_id" binding:"required"`
	Day       int    `json:"day" binding:"required,min=1"`
	Memo      string `json:"memo"`
}

type AutoPlanRequest struct {
	ContentIDs []string `json:"content_ids" binding:"required,min=1,dive,required"`
	DayCount   int      `json:"day_count" binding:"omitempty,min=1"`
}
