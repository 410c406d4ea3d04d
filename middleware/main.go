package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/annothem/annothem-backend/controller"
)

type Middlewares struct {
	CORSMiddleware      gin.HandlerFunc
	AuthMiddleware      gin.HandlerFunc
	RateLimitMiddleware gin.HandlerFunc
	TelemetryMiddleware gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	cors := CORSMiddleware(ctrl.Config.EnvConfig)
	auth := AuthMiddleware(ctrl.Config.EnvConfig)
	rateLimit := UploadRateLimitMiddleware(ctrl.Infra.Redis, ctrl.Infra.Logger, ctrl.Config.EnvConfig)
	telemetry := TelemetryMiddleware(ctrl.Config.EnvConfig)

	return &Middlewares{
		CORSMiddleware:      cors,
		AuthMiddleware:      auth,
		RateLimitMiddleware: rateLimit,
		TelemetryMiddleware: telemetry,
	}, nil
}
