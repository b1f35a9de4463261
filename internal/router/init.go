package router

import (
	"github.com/kiddocare/auth-api/internal/application"
	"github.com/kiddocare/auth-api/internal/container"
	"github.com/kiddocare/auth-api/internal/infrastructure/mongodb"
	handlers "github.com/kiddocare/auth-api/internal/interface/http"
	"github.com/kiddocare/auth-api/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	repo := mongodb.NewUserRepository(container.GetMongo())

	svc := application.NewService(
		repo,
		container.GetJWT(),
		container.GetLogger(),
	)

	handler := handlers.NewAuthHandler(
		svc,
		container.GetLogger(),
		container.GetConfig(),
		container.GetRabbitPub(),
	)

	return modules.NewAuthModule(handler, container.GetJWT())
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
