package handler

import (
	"errors"
	"net/http"
	"strconv"

	"retreats/internal/apperr"
	"retreats/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	AuthService    *service.AuthService
	UserService    *service.UserService
	RetreatService *service.RetreatService
	BookingService *service.BookingService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(as *service.AuthService, us *service.UserService,
	rs *service.RetreatService, bs *service.BookingService) *Handler {
	return &Handler{
		AuthService:    as,
		UserService:    us,
		RetreatService: rs,
		BookingService: bs,
	}
}

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/token", h.BasicAuth(), h.GetToken)

	router.POST("/users", h.CreateUser)
	router.GET("/users/me", h.TokenAuth(), h.CurrentUser)
	router.GET("/users/:id", h.GetUser)
	router.POST("/users/:id", h.TokenAuth(), h.UpdateUser)
	router.DELETE("/users/:id", h.TokenAuth(), h.DeleteUser)

	router.POST("/retreats", h.TokenAuth(), h.CreateRetreat)
	router.GET("/retreats", h.ListRetreats)
	router.GET("/retreats/:id", h.GetRetreat)
	router.PUT("/retreats/:id", h.TokenAuth(), h.UpdateRetreat)
	router.DELETE("/retreats/:id", h.TokenAuth(), h.DeleteRetreat)
	router.POST("/retreats/book/:id", h.TokenAuth(), h.BookRetreat)

	router.GET("/bookings", h.TokenAuth(), h.ListBookings)
	router.DELETE("/bookings/:id", h.TokenAuth(), h.DeleteBooking)
}

// Health обработчик GET /health - проверка живости сервиса.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError подбирает HTTP-статус по доменной ошибке и возвращает
// единообразное тело {"error": ...} без внутренних деталей.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrConflict.Error()})
	case errors.Is(err, apperr.ErrAuthentication):
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrAuthentication.Error()})
	case errors.Is(err, apperr.ErrAuthorization):
		c.JSON(http.StatusForbidden, gin.H{"error": apperr.ErrAuthorization.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": apperr.ErrNotFound.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("внутренняя ошибка при обработке запроса")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "внутренняя ошибка сервера"})
	}
}

// pathID разбирает параметр :id. Нечисловой идентификатор равносилен
// отсутствию записи.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": apperr.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}
