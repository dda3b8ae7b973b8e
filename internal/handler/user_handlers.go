package handler

import (
	"fmt"
	"net/http"

	"retreats/internal/service"

	"github.com/gin-gonic/gin"
)

// GetToken обработчик GET /token - выдает (или продлевает) токен пользователя,
// аутентифицированного по Basic.
func (h *Handler) GetToken(c *gin.Context) {
	token, expiration, err := h.AuthService.GetOrIssueToken(principal(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "tokenExpiration": expiration})
}

// CreateUser обработчик POST /users - регистрация нового пользователя.
func (h *Handler) CreateUser(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "в теле запроса отсутствуют обязательные поля или оно не является JSON"})
		return
	}
	user, err := h.UserService.Register(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser обработчик GET /users/:id - возвращает пользователя по ID.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.UserService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CurrentUser обработчик GET /users/me - возвращает пользователя по токену.
func (h *Handler) CurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, principal(c))
}

// UpdateUser обработчик POST /users/:id - изменяет данные пользователя.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "тело запроса не является корректным JSON"})
		return
	}
	user, err := h.UserService.Update(principal(c).ID, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser обработчик DELETE /users/:id - удаляет пользователя.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.UserService.Delete(principal(c).ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": fmt.Sprintf("пользователь %s удален", user.Username)})
}
