package groups_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideGroupRepo, provideGroupService)

func provideGroupRepo(db *gorm.DB) repositories.GroupRepository {
	return repositories.NewGroupRepository(db)
}

func provideGroupService(groupRepo repositories.GroupRepository, accountRepo repositories.AccountRepository) services.GroupServiceInterface {
	return services.NewGroupService(groupRepo, accountRepo)
}
