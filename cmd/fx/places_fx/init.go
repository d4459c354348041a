package places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	providePlaceRepo, provideEmbeddingRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.PlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository, embeddingRepo repositories.PlaceEmbeddingRepository, aiClient utils.AIClientInterface) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, embeddingRepo, aiClient)
}
