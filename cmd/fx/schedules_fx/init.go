package schedules_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideScheduleRepo, provideScheduleService)

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	placeRepo repositories.PlaceRepository,
	groupRepo repositories.GroupRepository,
	planner services.DayPlannerInterface,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(scheduleRepo, placeRepo, groupRepo, planner)
}
