package service

import (
	"retreats/internal/model"
)

// BookingService содержит бизнес-логику, связанную с бронированиями.
type BookingService struct {
	bookingStore BookingStore
	retreatStore RetreatStore
}

// NewBookingService создает новый сервис бронирований.
func NewBookingService(bookingStore BookingStore, retreatStore RetreatStore) *BookingService {
	return &BookingService{bookingStore: bookingStore, retreatStore: retreatStore}
}

// Book бронирует ретрит для пользователя. Операция идемпотентна: повторная
// попытка не создает вторую запись, а возвращает created=false. Несуществующий
// ретрит дает apperr.ErrNotFound.
func (s *BookingService) Book(userID, retreatID int) (*model.Retreat, bool, error) {
	retreat, err := s.retreatStore.GetByID(retreatID)
	if err != nil {
		return nil, false, err
	}
	_, created, err := s.bookingStore.Create(userID, retreat.ID)
	if err != nil {
		return nil, false, err
	}
	return retreat, created, nil
}

// ListForUser возвращает бронирования пользователя.
func (s *BookingService) ListForUser(userID int) ([]model.Booking, error) {
	return s.bookingStore.ListByUser(userID)
}

// Delete удаляет бронирование. Операция разрешена только его владельцу.
func (s *BookingService) Delete(principalID, bookingID int) error {
	booking, err := s.bookingStore.GetByID(bookingID)
	if err != nil {
		return err
	}
	if err := requireOwner(booking.UserID, principalID); err != nil {
		return err
	}
	return s.bookingStore.Delete(bookingID)
}
