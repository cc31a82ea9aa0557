package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/what-to-wear/internal/domain/auth"
	"github.com/yanqian/what-to-wear/internal/domain/recommendation"
	"github.com/yanqian/what-to-wear/internal/domain/weather"
	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	weatherSvc weather.Service
	recSvc     recommendation.Service
	authSvc    auth.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(weatherSvc weather.Service, recSvc recommendation.Service, authSvc auth.Service, logger *slog.Logger) *Handler {
	return &Handler{
		weatherSvc: weatherSvc,
		recSvc:     recSvc,
		authSvc:    authSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// Register creates a new account.
func (h *Handler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusUnprocessableEntity, apperrors.CodeInvalidParameter, errMessage(err), err))
		return
	}
	if _, err := h.authSvc.Register(c.Request.Context(), req); err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, "user created successfully")
}

// Login exchanges credentials for a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusUnprocessableEntity, apperrors.CodeInvalidParameter, errMessage(err), err))
		return
	}
	resp, err := h.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented token for the rest of its lifetime.
func (h *Handler) Logout(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		return
	}
	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		abortWithAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CurrentWeather proxies present conditions for the requested location.
func (h *Handler) CurrentWeather(c *gin.Context) {
	loc, ok := h.location(c)
	if !ok {
		return
	}
	data, err := h.weatherSvc.Current(c.Request.Context(), loc)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// ForecastWeather proxies a multi-day forecast for the requested location.
func (h *Handler) ForecastWeather(c *gin.Context) {
	loc, ok := h.location(c)
	if !ok {
		return
	}
	days, err := weather.ParseDays(c.Query("days"))
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	data, err := h.weatherSvc.Forecast(c.Request.Context(), loc, days)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// CurrentRecommendation returns a clothing recommendation for present conditions.
func (h *Handler) CurrentRecommendation(c *gin.Context) {
	loc, ok := h.location(c)
	if !ok {
		return
	}
	text, err := h.recSvc.Current(c.Request.Context(), loc)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	h.logRecommendation(c)
	c.JSON(http.StatusOK, text)
}

// ForecastRecommendation returns per-day clothing recommendations.
func (h *Handler) ForecastRecommendation(c *gin.Context) {
	loc, ok := h.location(c)
	if !ok {
		return
	}
	days, err := weather.ParseDays(c.Query("days"))
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	text, err := h.recSvc.Forecast(c.Request.Context(), loc, days)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	h.logRecommendation(c)
	c.JSON(http.StatusOK, text)
}

func (h *Handler) location(c *gin.Context) (weather.LocationQuery, bool) {
	loc, err := weather.ParseLocation(c.Query("lat"), c.Query("lon"), c.Query("city"))
	if err != nil {
		abortWithAppError(c, err)
		return weather.LocationQuery{}, false
	}
	return loc, true
}

func (h *Handler) logRecommendation(c *gin.Context) {
	if claims, ok := getClaims(c); ok {
		h.logger.Info("recommendation served", "username", claims.Username, "path", c.Request.URL.Path)
	}
}
