package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"retreats/internal/apperr"
	"retreats/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// principalKey - ключ контекста gin, под которым хранится аутентифицированный пользователь.
const principalKey = "principal"

// BasicAuth аутентифицирует запрос по паре логин/пароль из заголовка
// Authorization. Любой отказ дает 401 с одним и тем же сообщением.
func (h *Handler) BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			abortUnauthorized(c)
			return
		}
		user, err := h.AuthService.AuthenticateBasic(username, password)
		if err != nil {
			if errors.Is(err, apperr.ErrAuthentication) {
				abortUnauthorized(c)
			} else {
				c.Abort()
				writeError(c, err)
			}
			return
		}
		c.Set(principalKey, user)
		c.Next()
	}
}

// TokenAuth аутентифицирует запрос по bearer-токену.
func (h *Handler) TokenAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.AuthService.ValidateToken(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			if errors.Is(err, apperr.ErrAuthentication) {
				abortUnauthorized(c)
			} else {
				c.Abort()
				writeError(c, err)
			}
			return
		}
		c.Set(principalKey, user)
		c.Next()
	}
}

// RequestLogger логирует каждый запрос: метод, путь, статус и длительность.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("запрос обработан")
	}
}

// bearerToken извлекает токен из заголовка вида "Bearer <token>".
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrAuthentication.Error()})
}

// principal возвращает аутентифицированного пользователя из контекста запроса.
// Вызывается только из обработчиков, стоящих за auth-middleware.
func principal(c *gin.Context) *model.User {
	return c.MustGet(principalKey).(*model.User)
}
