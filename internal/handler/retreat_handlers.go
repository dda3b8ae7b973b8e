package handler

import (
	"fmt"
	"net/http"

	"retreats/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateRetreat обработчик POST /retreats - создает ретрит.
// Аутентифицированный пользователь становится его автором.
func (h *Handler) CreateRetreat(c *gin.Context) {
	var input service.RetreatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "в теле запроса отсутствуют обязательные поля или оно не является JSON"})
		return
	}
	retreat, err := h.RetreatService.Create(principal(c).ID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, retreat)
}

// ListRetreats обработчик GET /retreats - возвращает список всех ретритов.
func (h *Handler) ListRetreats(c *gin.Context) {
	retreats, err := h.RetreatService.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, retreats)
}

// GetRetreat обработчик GET /retreats/:id - возвращает ретрит по ID.
func (h *Handler) GetRetreat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	retreat, err := h.RetreatService.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, retreat)
}

// UpdateRetreat обработчик PUT /retreats/:id - заменяет поля ретрита.
// Операция разрешена только автору.
func (h *Handler) UpdateRetreat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.RetreatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "в теле запроса отсутствуют обязательные поля или оно не является JSON"})
		return
	}
	retreat, err := h.RetreatService.Update(principal(c).ID, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, retreat)
}

// DeleteRetreat обработчик DELETE /retreats/:id - удаляет ретрит.
// Операция разрешена только автору.
func (h *Handler) DeleteRetreat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	retreat, err := h.RetreatService.Delete(principal(c).ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": fmt.Sprintf("ретрит %s удален", retreat.Name)})
}

// BookRetreat обработчик POST /retreats/book/:id - бронирует ретрит для
// текущего пользователя. Повторное бронирование не создает дубль.
func (h *Handler) BookRetreat(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	retreat, created, err := h.BookingService.Book(principal(c).ID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("вы уже забронировали ретрит: %s", retreat.Name)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("вы забронировали ретрит: %s", retreat.Name)})
}
