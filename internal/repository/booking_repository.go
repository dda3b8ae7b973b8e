package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"retreats/internal/apperr"
	"retreats/internal/model"

	"github.com/jmoiron/sqlx"
)

// BookingRepository обеспечивает доступ к данным бронирований в базе данных.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository создает новый репозиторий для бронирований.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create создает бронирование. Возвращает (id, true) для новой записи и
// (0, false), если пользователь уже бронировал этот ретрит. Уникальное
// ограничение (user_id, retreat_id) закрывает гонку параллельных запросов:
// второй INSERT не вернет строку вместо того, чтобы создать дубль.
func (r *BookingRepository) Create(userID, retreatID int) (int, bool, error) {
	query := `INSERT INTO bookings (user_id, retreat_id) VALUES ($1, $2)
	          ON CONFLICT (user_id, retreat_id) DO NOTHING RETURNING id`
	var id int
	err := r.db.QueryRow(query, userID, retreatID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("не удалось создать бронирование: %w", err)
	}
	return id, true, nil
}

// GetByID возвращает бронирование по ID.
func (r *BookingRepository) GetByID(id int) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.Get(&booking, "SELECT * FROM bookings WHERE id=$1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске бронирования: %w", err)
	}
	return &booking, nil
}

// ListByUser возвращает все бронирования пользователя.
func (r *BookingRepository) ListByUser(userID int) ([]model.Booking, error) {
	bookings := []model.Booking{}
	err := r.db.Select(&bookings, "SELECT * FROM bookings WHERE user_id=$1 ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка бронирований: %w", err)
	}
	return bookings, nil
}

// Delete удаляет бронирование.
func (r *BookingRepository) Delete(id int) error {
	res, err := r.db.Exec("DELETE FROM bookings WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить бронирование: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
