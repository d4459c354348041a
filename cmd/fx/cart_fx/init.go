package cart_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideCartRepo, provideCartService)

func provideCartRepo(db *gorm.DB) repositories.CartRepository {
	return repositories.NewCartRepository(db)
}

func provideCartService(
	cartRepo repositories.CartRepository,
	placeRepo repositories.PlaceRepository,
	scheduleRepo repositories.ScheduleRepository,
	groupRepo repositories.GroupRepository,
) services.CartServiceInterface {
	return services.NewCartService(cartRepo, placeRepo, scheduleRepo, groupRepo)
}
