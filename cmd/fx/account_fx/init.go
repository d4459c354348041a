package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"tripmate/internal/infra"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
	mem "tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenIssuer)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg *infra.Config, logger *zap.Logger) *utils.TokenIssuer {
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, tokens are signed with an empty key")
	}
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, revoked mem.RevokedTokenStore) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, revoked)
}
