package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/what-to-wear/internal/domain/auth"
	"github.com/yanqian/what-to-wear/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/logout", authMiddleware(authSvc), handler.Logout)
	}

	weatherGroup := router.Group("/weather", authMiddleware(authSvc))
	{
		weatherGroup.GET("/current", handler.CurrentWeather)
		weatherGroup.GET("/forecast", handler.ForecastWeather)
	}

	recGroup := router.Group("/recommendation", authMiddleware(authSvc))
	{
		recGroup.GET("/current", handler.CurrentRecommendation)
		recGroup.GET("/forecast", handler.ForecastRecommendation)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
