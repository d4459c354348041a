package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type SchedulesController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewSchedulesController(scheduleService services.ScheduleServiceInterface) *SchedulesController {
	return &SchedulesController{
		scheduleService: scheduleService,
	}
}

// CreateSchedule godoc
// @Summary Create a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreateScheduleRequest true "Schedule payload"
// @Success 200 {object} utils.APIResponse{data=response_models.ScheduleDetail}
// @Failure 400 {object} utils.APIResponse
// @Router /schedules [post]
func (s *SchedulesController) CreateSchedule(c *gin.Context) {
	var req request_models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	detail, err := s.scheduleService.CreateSchedule(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Schedule created successfully")
}

// ListSchedules godoc
// @Summary List my schedules
// @Description Own schedules and schedules shared with my groups
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} utils.APIResponse{data=[]response_models.ScheduleSummary}
// @Router /schedules [get]
func (s *SchedulesController) ListSchedules(c *gin.Context) {
	page, pageSize, err := utils.ParsePaging(c, "10")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	schedules, err := s.scheduleService.ListSchedules(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedules, "Schedules fetched successfully")
}

// GetSchedule godoc
// @Summary Schedule detail
// @Description Stops grouped by day with the distance of every leg
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse{data=response_models.ScheduleDetail}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /schedules/{id} [get]
func (s *SchedulesController) GetSchedule(c *gin.Context) {
	detail, err := s.scheduleService.GetSchedule(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Schedule fetched successfully")
}

// UpdateSchedule godoc
// @Summary Update a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body request_models.UpdateScheduleRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.ScheduleDetail}
// @Router /schedules/{id} [put]
func (s *SchedulesController) UpdateSchedule(c *gin.Context) {
	var req request_models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	detail, err := s.scheduleService.UpdateSchedule(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Schedule updated successfully")
}

// DeleteSchedule godoc
// @Summary Delete a schedule
// @Tags Schedules
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Router /schedules/{id} [delete]
func (s *SchedulesController) DeleteSchedule(c *gin.Context) {
	if err := s.scheduleService.DeleteSchedule(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule deleted successfully")
}

// AddItem godoc
// @Summary Add a place to a day
// @Description Appended after the last stop of that day
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body request_models.AddScheduleItemRequest true "Item"
// @Success 200 {object} utils.APIResponse{data=response_models.ScheduleDetail}
// @Router /schedules/{id}/items [post]
func (s *SchedulesController) AddItem(c *gin.Context) {
	var req request_models.AddScheduleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	detail, err := s.scheduleService.AddItem(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Item added successfully")
}

// DeleteItem godoc
// @Summary Remove a stop
// @Tags Schedules
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} utils.APIResponse
// @Router /schedules/{id}/items/{itemId} [delete]
func (s *SchedulesController) DeleteItem(c *gin.Context) {
	err := s.scheduleService.DeleteItem(c.Request.Context(), c.GetString("user_id"), c.Param("id"), c.Param("itemId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Item removed successfully")
}

// OptimizeSchedule godoc
// @Summary Optimize visiting order
// @Description Greedy nearest-neighbour per day, continuing from the previous day's last stop. Lodging ends every day but the last.
// @Tags Schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse{data=response_models.ScheduleDetail}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /schedules/{id}/optimize [post]
func (s *SchedulesController) OptimizeSchedule(c *gin.Context) {
	detail, err := s.scheduleService.OptimizeSchedule(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Schedule optimized successfully")
}

// AutoPlanSchedule godoc
// @Summary Plan a schedule from a list of places
// @Description Groups the places into days, then optimizes. Existing stops are replaced.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body request_models.AutoPlanRequest true "Places"
// @Success 200 {object} utils.APIResponse{data=response_models.ScheduleDetail}
// @Router /schedules/{id}/auto-plan [post]
func (s *SchedulesController) AutoPlanSchedule(c *gin.Context) {
	var req request_models.AutoPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	detail, err := s.scheduleService.AutoPlanSchedule(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Schedule planned successfully")
}
