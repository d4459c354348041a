package ai_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripmate/internal/infra"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
	ProvideDayPlanner)

// ProvideAIClient returns a nil client when AI_PROVIDER is "none"; features
// that need it then degrade instead of failing startup.
func ProvideAIClient(lc fx.Lifecycle, cfg *infra.Config, logger *zap.Logger) (utils.AIClientInterface, error) {
	apiKey, model := cfg.AIKey()

	client, err := utils.NewAIClient(context.Background(), cfg.AIProvider, apiKey, model)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("AI provider disabled, day planning uses the geographic fallback")
		return nil, nil
	}

	logger.Info("AI client initialized", zap.String("provider", client.Provider()), zap.String("model", model))
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func ProvideDayPlanner(aiClient utils.AIClientInterface) services.DayPlannerInterface {
	return services.NewDayPlanner(aiClient)
}
