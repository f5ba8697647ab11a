//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/jmfrazier/pawtrack/internal/bootstrap"
	"github.com/jmfrazier/pawtrack/internal/domain/auth"
	"github.com/jmfrazier/pawtrack/internal/domain/events"
	"github.com/jmfrazier/pawtrack/internal/domain/pets"
	"github.com/jmfrazier/pawtrack/internal/domain/reviews"
	"github.com/jmfrazier/pawtrack/internal/infra/config"
	httpiface "github.com/jmfrazier/pawtrack/internal/interface/http"
	"github.com/jmfrazier/pawtrack/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		providePostgresPool,
		provideUserRepository,
		providePetRepository,
		provideEventRepository,
		provideReviewRepository,
		providePhotoStorage,
		provideRateLimiter,
		auth.NewService,
		pets.NewService,
		events.NewService,
		reviews.NewService,
		httpiface.NewHandler,
		httpiface.NewAuthHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
