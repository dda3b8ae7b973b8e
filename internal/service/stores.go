package service

import (
	"time"

	"retreats/internal/model"
)

// UserStore описывает операции хранилища пользователей, необходимые сервисам.
// Реализуется repository.UserRepository.
type UserStore interface {
	Create(user *model.User) (int, error)
	GetByID(id int) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	GetByToken(token string) (*model.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	Update(user *model.User) error
	UpdateToken(userID int, token string, expiration time.Time) error
	Delete(id int) error
}

// RetreatStore описывает операции хранилища ретритов.
type RetreatStore interface {
	Create(retreat *model.Retreat) (int, error)
	FindAll() ([]model.Retreat, error)
	GetByID(id int) (*model.Retreat, error)
	Update(retreat *model.Retreat) error
	Delete(id int) error
}

// BookingStore описывает операции хранилища бронирований.
type BookingStore interface {
	Create(userID, retreatID int) (int, bool, error)
	GetByID(id int) (*model.Booking, error)
	ListByUser(userID int) ([]model.Booking, error)
	Delete(id int) error
}
