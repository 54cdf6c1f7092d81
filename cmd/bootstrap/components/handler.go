package components

import (
	"campus-reservation/internal/handler"
	"campus-reservation/internal/handler/api"
	"campus-reservation/internal/handler/middleware"
	"campus-reservation/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewStatusHandler,
		api.NewFacilityHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
