package boards_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideBoardRepo, provideBoardService)

func provideBoardRepo(db *gorm.DB) repositories.BoardRepository {
	return repositories.NewBoardRepository(db)
}

func provideBoardService(boardRepo repositories.BoardRepository, accountRepo repositories.AccountRepository) services.BoardServiceInterface {
	return services.NewBoardService(boardRepo, accountRepo)
}
