package bootstrap

import (
	"time"

	"go.uber.org/fx"

	"vending-server/internal/handler/middleware"
	"vending-server/internal/pkg/config"
	"vending-server/internal/pkg/jwt"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		fx.Annotate(
			func(s *jwt.Service) *jwt.Service { return s },
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}
	return jwt.NewService(cfg.JWT.Secret, duration)
}
