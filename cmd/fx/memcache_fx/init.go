package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	mem "tripmate/pkg/memcache"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Provide(provideRevokedTokens)

func provideRevokedTokens(lc fx.Lifecycle, logger *zap.Logger) mem.RevokedTokenStore {
	store := mem.NewRevokedTokens()
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							logger.Debug("revoked tokens swept", zap.Int("removed", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})
	return store
}
