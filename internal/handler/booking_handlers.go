package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListBookings обработчик GET /bookings - возвращает бронирования текущего пользователя.
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.BookingService.ListForUser(principal(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// DeleteBooking обработчик DELETE /bookings/:id - удаляет бронирование.
// Операция разрешена только его владельцу.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.BookingService.Delete(principal(c).ID, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "бронирование успешно удалено"})
}
