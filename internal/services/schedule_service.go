package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

const maxTripDays = 30

type ScheduleServiceInterface interface {
	CreateSchedule(ctx context.Context, accountID string, request request_models.CreateScheduleRequest) (*response_models.ScheduleDetail, error)
	ListSchedules(ctx context.Context, accountID string, page, pageSize int) ([]response_models.ScheduleSummary, error)
	GetSchedule(ctx context.Context, accountID, scheduleID string) (*response_models.ScheduleDetail, error)
	UpdateSchedule(ctx context.Context, accountID, scheduleID string, request request_models.UpdateScheduleRequest) (*response_models.ScheduleDetail, error)
	DeleteSchedule(ctx context.Context, accountID, scheduleID string) error

	AddItem(ctx context.Context, accountID, scheduleID string, request request_models.AddScheduleItemRequest) (*response_models.ScheduleDetail, error)
	DeleteItem(ctx context.Context, accountID, scheduleID, itemID string) error

	OptimizeSchedule(ctx context.Context, accountID, scheduleID string) (*response_models.ScheduleDetail, error)
	AutoPlanSchedule(ctx context.Context, accountID, scheduleID string, request request_models.AutoPlanRequest) (*response_models.ScheduleDetail, error)
}

type ScheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	placeRepo    repositories.PlaceRepository
	groupRepo    repositories.GroupRepository
	planner      DayPlannerInterface
}

func NewScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	placeRepo repositories.PlaceRepository,
	groupRepo repositories.GroupRepository,
	planner DayPlannerInterface,
) ScheduleServiceInterface {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		placeRepo:    placeRepo,
		groupRepo:    groupRepo,
		planner:      planner,
	}
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, accountID string, request request_models.CreateScheduleRequest) (*response_models.ScheduleDetail, error) {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}
	if err := validateTrip(request.StartDate, request.EndDate, request.Start); err != nil {
		return nil, err
	}

	schedule := &db_models.Schedule{
		AccountID:      owner,
		Title:          strings.TrimSpace(request.Title),
		StartDate:      request.StartDate,
		EndDate:        request.EndDate,
		StartName:      request.Start.Name,
		StartLatitude:  request.Start.Latitude,
		StartLongitude: request.Start.Longitude,
	}

	if request.GroupID != "" {
		groupID, err := parseID(request.GroupID, utils.ErrInvalidInput)
		if err != nil {
			return nil, err
		}
		member, err := s.groupRepo.IsMember(ctx, groupID, owner)
		if err != nil {
			zap.L().Error("check group membership", zap.String("group_id", request.GroupID), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		if !member {
			return nil, utils.ErrForbidden
		}
		schedule.GroupID = &groupID
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		zap.L().Error("create schedule", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return buildScheduleDetail(schedule), nil
}

func (s *ScheduleService) ListSchedules(ctx context.Context, accountID string, page, pageSize int) ([]response_models.ScheduleSummary, error) {
	owner, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	groupIDs, err := s.groupRepo.ListGroupIDs(ctx, owner)
	if err != nil {
		zap.L().Error("list group ids", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	schedules, err := s.scheduleRepo.ListAccessible(ctx, owner, groupIDs, page, pageSize)
	if err != nil {
		zap.L().Error("list schedules", zap.String("account_id", accountID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ScheduleSummary, 0, len(schedules))
	for i := range schedules {
		out = append(out, scheduleSummary(&schedules[i]))
	}
	return out, nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, accountID, scheduleID string) (*response_models.ScheduleDetail, error) {
	schedule, _, err := s.loadAccessible(ctx, accountID, scheduleID)
	if err != nil {
		return nil, err
	}
	return buildScheduleDetail(schedule), nil
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, accountID, scheduleID string, request request_models.UpdateScheduleRequest) (*response_models.ScheduleDetail, error) {
	schedule, _, err := s.loadAccessible(ctx, accountID, scheduleID)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(request.Title); title != "" {
		schedule.Title = title
	}
	if request.StartDate != nil {
		schedule.StartDate = *request.StartDate
	}
	if request.EndDate != nil {
		schedule.EndDate = *request.EndDate
	}
	start := request_models.StartLocation{
		Name:      schedule.StartName,
		Latitude:  schedule.StartLatitude,
		Longitude: schedule.StartLongitude,
	}
	if request.Start != nil {
		start = *request.Start
	}
	if err := validateTrip(schedule.StartDate, schedule.EndDate, start); err != nil {
		return nil, err
	}
	schedule.StartName = start.Name
	schedule.StartLatitude = start.Latitude
	schedule.StartLongitude = start.Longitude

	// Shrinking the trip must not orphan planned days.
	dayCount := utils.DaysBetweenInclusive(schedule.StartDate, schedule.EndDate)
	for _, it := range schedule.Items {
		if it.DayNumber > dayCount {
			return nil, fmt.Errorf("%w: day %d still has stops", utils.ErrInvalidInput, it.DayNumber)
		}
	}

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		zap.L().Error("update schedule", zap.String("schedule_id", scheduleID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return buildScheduleDetail(schedule), nil
}

// DeleteSchedule is reserved to the owner; group members may only edit.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, accountID, scheduleID string) error {
	schedule, caller, err := s.loadAccessible(ctx, accountID, scheduleID)
	if err != nil {
		return err
	}
	if schedule.AccountID != caller {
		return utils.ErrForbidden
	}

	if err := s.scheduleRepo.Delete(ctx, schedule.ID); err != nil {
		zap.L().Error("delete schedule", zap.String("schedule_id", scheduleID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ScheduleService) AddItem(ctx context.Context, accountID, scheduleID string, request request_models.AddScheduleItemRequest) (*response_models.ScheduleDetail, error) {
	schedule, _, err := s.loadAccessible(ctx, accountID, scheduleID)
	if err != nil {
		return nil, err
	}

	if request.Day < 1 || request.Day > scheduleDayCount(schedule) {
		return nil, utils.ErrInvalidInput
	}
	for _, it := range schedule.Items {
		if it.DayNumber == request.Day && it.ContentID == request.ContentID && !it.CarryOver {
			return nil, fmt.Errorf("%w: place already planned on day %d", utils.ErrInvalidInput, request.Day)
		}
	}

	place, err := s.placeRepo.GetByContentID(ctx, request.ContentID)
	if err != nil {
		zap.L().Error("get place", zap.String("content_id", request.ContentID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	items := []db_models.ScheduleItem{{ContentID: place.ContentID, Memo: request.Memo}}
	if err := s.scheduleRepo.AppendItems(ctx, schedule.ID, request.Day, items); err != nil {
		zap.L().Error("append schedule item", zap.String("schedule_id", scheduleID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return s.reloadDetail(ctx, schedule.ID)
}

func (s *ScheduleService) DeleteItem(ctx context.Context, accountID, scheduleID, itemID string) error {
	schedule, _, err := s.loadAccessible(ctx, accountID, scheduleID)
	if err != nil {
		return err
	}
	item, err := parseID(itemID, utils.ErrItemNotFound)
	if err != nil {
		return err
	}

	deleted, err := s.scheduleRepo.DeleteItem(ctx, schedule.ID, item)
	if err != nil {
		zap.L().Error("delete schedule item", zap.String("schedule_id", scheduleID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrItemNotFound
	}
	return nil
}

// OptimizeSchedule reorders every day of the schedule with OptimizeRoute and
// stores the new order in one transaction.
func (s *ScheduleService) OptimizeSchedule(ctx context.Context, accountID, scheduleID string) (*response_models.ScheduleDetail, error) {
	schedule, _, err := s.loadAccessible(ctx, accountID, scheduleID)
	if err != nil {
		return nil, err
	}

	plan, err := routePlanFromSchedule(schedule)
	if err != nil {
		return nil, err
	}

	memos := make(map[string]string, len(schedule.Items))
	for _, it := range schedule.Items {
		if !it.CarryOver {
			memos[itemKey(it.DayNumber, it.ContentID)] = it.Memo
		}
	}
	return s.applyRoute(ctx, schedule, plan, memos)
}

// AutoPlanSchedule replaces the schedule's stops with the given places,
// grouped into days by the planner and then optimized.
func (s *ScheduleService) AutoPlanSchedule(ctx context.Context, accountID, scheduleID string, request request_models.AutoPlanRequest) (*response_models.ScheduleDetail, error) {
	schedule, _, err := s.loadAccessible(ctx, accountID, scheduleID)
	if err != nil {
		return nil, err
	}

	dayCount := scheduleDayCount(schedule)
	if request.DayCount > 0 {
		if request.DayCount > dayCount {
			return nil, fmt.Errorf("%w: trip has only %d days", utils.ErrInvalidInput, dayCount)
		}
		dayCount = request.DayCount
	}

	ids := uniqueIDs(request.ContentIDs)
	if len(ids) == 0 {
		return nil, utils.ErrInvalidInput
	}
	rows, err := s.placeRepo.ListByContentIDs(ctx, ids)
	if err != nil {
		zap.L().Error("list places by content ids", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[string]db_models.Place, len(rows))
	for _, r := range rows {
		byID[r.ContentID] = r
	}
	places := make([]Place, 0, len(ids))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", utils.ErrPlaceNotFound, id)
		}
		places = append(places, toRoutePlace(row))
	}

	days, err := s.planner.PlanDays(ctx, scheduleStart(schedule), places, dayCount)
	if err != nil {
		return nil, err
	}

	plan := RoutePlan{ScheduleID: schedule.ID.String(), Days: days}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return s.applyRoute(ctx, schedule, plan, nil)
}

func (s *ScheduleService) applyRoute(ctx context.Context, schedule *db_models.Schedule, plan RoutePlan, memos map[string]string) (*response_models.ScheduleDetail, error) {
	startTime := time.Now()

	route := OptimizeRoute(plan, scheduleStart(schedule))

	items := make([]db_models.ScheduleItem, 0, len(route.Stops))
	for _, stop := range route.Stops {
		item := db_models.ScheduleItem{
			DayNumber:  stop.Day,
			OrderIndex: stop.Order,
			ContentID:  stop.ContentID,
			CarryOver:  stop.CarryOver,
		}
		if !stop.CarryOver {
			item.Memo = memos[itemKey(stop.Day, stop.ContentID)]
		}
		items = append(items, item)
	}

	if err := s.scheduleRepo.ReplaceItems(ctx, schedule.ID, items); err != nil {
		zap.L().Error("replace schedule items", zap.String("schedule_id", schedule.ID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	zap.L().Info("schedule optimized",
		zap.String("schedule_id", schedule.ID.String()),
		zap.Int("days", len(plan.Days)),
		zap.Int("stops", len(route.Stops)),
		zap.Duration("elapsed", time.Since(startTime)),
	)

	return s.reloadDetail(ctx, schedule.ID)
}

func (s *ScheduleService) reloadDetail(ctx context.Context, id uuid.UUID) (*response_models.ScheduleDetail, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("get schedule", zap.String("schedule_id", id.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}
	return buildScheduleDetail(schedule), nil
}

func (s *ScheduleService) loadAccessible(ctx context.Context, accountID, scheduleID string) (*db_models.Schedule, uuid.UUID, error) {
	caller, err := parseID(accountID, utils.ErrUnauthorized)
	if err != nil {
		return nil, uuid.Nil, err
	}
	id, err := parseID(scheduleID, utils.ErrScheduleNotFound)
	if err != nil {
		return nil, uuid.Nil, err
	}

	schedule, err := loadAccessibleSchedule(ctx, s.scheduleRepo, s.groupRepo, caller, id)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return schedule, caller, nil
}

// loadAccessibleSchedule returns the schedule when caller owns it or belongs
// to the group it is shared with.
func loadAccessibleSchedule(ctx context.Context, scheduleRepo repositories.ScheduleRepository, groupRepo repositories.GroupRepository, caller, scheduleID uuid.UUID) (*db_models.Schedule, error) {
	schedule, err := scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		zap.L().Error("get schedule", zap.String("schedule_id", scheduleID.String()), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}
	if schedule.AccountID == caller {
		return schedule, nil
	}
	if schedule.GroupID != nil {
		member, err := groupRepo.IsMember(ctx, *schedule.GroupID, caller)
		if err != nil {
			zap.L().Error("check group membership", zap.String("group_id", schedule.GroupID.String()), zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		if member {
			return schedule, nil
		}
	}
	return nil, utils.ErrForbidden
}

// routePlanFromSchedule lays the stored items out as days 1..N, keeping empty
// days so the carry-over and last-day rules see the real calendar. Stored
// carry-over items are skipped; the optimizer derives them again.
func routePlanFromSchedule(schedule *db_models.Schedule) (RoutePlan, error) {
	dayCount := scheduleDayCount(schedule)
	for _, it := range schedule.Items {
		if it.DayNumber > dayCount {
			dayCount = it.DayNumber
		}
	}

	days := emptyDays(dayCount)
	for _, it := range schedule.Items {
		if it.DayNumber < 1 {
			return RoutePlan{}, fmt.Errorf("%w: item %s has day %d", utils.ErrInvalidItinerary, it.ID, it.DayNumber)
		}
		if it.CarryOver {
			continue
		}
		if it.Place.ContentID == "" {
			return RoutePlan{}, fmt.Errorf("%w: place %q no longer exists", utils.ErrInvalidItinerary, it.ContentID)
		}
		days[it.DayNumber-1].Places = append(days[it.DayNumber-1].Places, toRoutePlace(it.Place))
	}

	plan := RoutePlan{ScheduleID: schedule.ID.String(), Days: days}
	if err := plan.Validate(); err != nil {
		return RoutePlan{}, err
	}
	return plan, nil
}

func scheduleStart(schedule *db_models.Schedule) Place {
	return Place{
		ContentID: "start:" + schedule.ID.String(),
		Title:     schedule.StartName,
		Latitude:  schedule.StartLatitude,
		Longitude: schedule.StartLongitude,
	}
}

func scheduleDayCount(schedule *db_models.Schedule) int {
	return utils.DaysBetweenInclusive(schedule.StartDate, schedule.EndDate)
}

func validateTrip(startDate, endDate time.Time, start request_models.StartLocation) error {
	days := utils.DaysBetweenInclusive(startDate, endDate)
	if days < 1 {
		return fmt.Errorf("%w: end date is before start date", utils.ErrInvalidInput)
	}
	if days > maxTripDays {
		return fmt.Errorf("%w: trips are limited to %d days", utils.ErrInvalidInput, maxTripDays)
	}
	if strings.TrimSpace(start.Name) == "" || !utils.ValidCoordinate(start.Latitude, start.Longitude) {
		return fmt.Errorf("%w: start location", utils.ErrInvalidInput)
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func itemKey(day int, contentID string) string {
	return fmt.Sprintf("%d/%s", day, contentID)
}

func scheduleSummary(schedule *db_models.Schedule) response_models.ScheduleSummary {
	summary := response_models.ScheduleSummary{
		ID:        schedule.ID.String(),
		Title:     schedule.Title,
		StartDate: utils.FormatDateKST(schedule.StartDate),
		EndDate:   utils.FormatDateKST(schedule.EndDate),
		DayCount:  scheduleDayCount(schedule),
	}
	if schedule.GroupID != nil {
		summary.GroupID = schedule.GroupID.String()
	}
	return summary
}

// buildScheduleDetail groups items by day, in stored order, with the
// straight-line distance of every leg inside a day.
func buildScheduleDetail(schedule *db_models.Schedule) *response_models.ScheduleDetail {
	summary := scheduleSummary(schedule)

	dayCount := summary.DayCount
	for _, it := range schedule.Items {
		if it.DayNumber > dayCount {
			dayCount = it.DayNumber
		}
	}

	days := make([]response_models.ScheduleDay, dayCount)
	for i := range days {
		days[i] = response_models.ScheduleDay{
			Day:   i + 1,
			Date:  utils.FormatDateKST(utils.StartOfDayKST(schedule.StartDate).AddDate(0, 0, i)),
			Stops: []response_models.ScheduleStop{},
		}
	}
	paths := make([][]Place, dayCount)
	for _, it := range schedule.Items {
		if it.DayNumber < 1 {
			continue
		}
		day := &days[it.DayNumber-1]
		place := toPlaceResponse(it.Place)
		if place.ContentID == "" {
			place.ContentID = it.ContentID
		}
		day.Stops = append(day.Stops, response_models.ScheduleStop{
			ItemID:    it.ID.String(),
			Order:     it.OrderIndex,
			Memo:      it.Memo,
			Place:     place,
			CarryOver: it.CarryOver,
		})
		paths[it.DayNumber-1] = append(paths[it.DayNumber-1], toRoutePlace(it.Place))
	}

	for i := range days {
		for j, d := range LegDistancesKm(paths[i]) {
			d := d
			days[i].Stops[j].DistanceToNextKm = &d
		}
		days[i].TotalDistanceKm = RouteDistanceKm(paths[i])
	}

	return &response_models.ScheduleDetail{
		ScheduleSummary: summary,
		Start: response_models.ScheduleStart{
			Name:      schedule.StartName,
			Latitude:  schedule.StartLatitude,
			Longitude: schedule.StartLongitude,
		},
		Days: days,
	}
}
