package favorites_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideFavoriteRepo, provideFavoriteService)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(favoriteRepo repositories.FavoriteRepository, placeRepo repositories.PlaceRepository) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, placeRepo)
}
