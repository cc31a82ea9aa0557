//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/what-to-wear/internal/bootstrap"
	"github.com/yanqian/what-to-wear/internal/domain/auth"
	"github.com/yanqian/what-to-wear/internal/domain/recommendation"
	"github.com/yanqian/what-to-wear/internal/domain/weather"
	"github.com/yanqian/what-to-wear/internal/infra/config"
	"github.com/yanqian/what-to-wear/internal/infra/llm/openrouter"
	"github.com/yanqian/what-to-wear/internal/infra/weatherapi"
	httpiface "github.com/yanqian/what-to-wear/internal/interface/http"
	"github.com/yanqian/what-to-wear/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideRecommendationConfig,
		provideWeatherClient,
		provideLLMClient,
		provideUserRepository,
		provideTokenStore,
		auth.NewService,
		weather.NewService,
		recommendation.NewService,
		wire.Bind(new(weather.Provider), new(*weatherapi.Client)),
		wire.Bind(new(recommendation.Completer), new(*openrouter.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
