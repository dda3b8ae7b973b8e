package service

import (
	"retreats/internal/apperr"
	"retreats/internal/model"
)

// RegisterInput - данные регистрации нового пользователя.
type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// UpdateUserInput перечисляет поля, которые пользователь может изменить.
// Набор зафиксирован на уровне типа: никакого динамического сопоставления
// имен полей во время выполнения.
type UpdateUserInput struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// UserService содержит бизнес-логику, связанную с пользователями.
type UserService struct {
	userStore UserStore
	auth      *AuthService
}

// NewUserService создает новый сервис пользователей.
func NewUserService(userStore UserStore, auth *AuthService) *UserService {
	return &UserService{userStore: userStore, auth: auth}
}

// Register создает нового пользователя. Пароль хешируется до записи в базу.
// Занятые username/email дают apperr.ErrConflict; предварительная проверка
// подстрахована уникальными ограничениями на стороне базы.
func (s *UserService) Register(input RegisterInput) (*model.User, error) {
	exists, err := s.userStore.ExistsByUsernameOrEmail(input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrConflict
	}
	user := &model.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Email:     input.Email,
	}
	if err := s.auth.SetPassword(user, input.Password); err != nil {
		return nil, err
	}
	id, err := s.userStore.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}

// GetByID возвращает пользователя по ID.
func (s *UserService) GetByID(id int) (*model.User, error) {
	return s.userStore.GetByID(id)
}

// Update изменяет данные пользователя. Операция разрешена только самому
// пользователю; смена пароля приводит к повторному хешированию.
func (s *UserService) Update(principalID, id int, input UpdateUserInput) (*model.User, error) {
	user, err := s.userStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(user.ID, principalID); err != nil {
		return nil, err
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		if err := s.auth.SetPassword(user, *input.Password); err != nil {
			return nil, err
		}
	}
	if err := s.userStore.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete удаляет пользователя. Операция разрешена только самому пользователю.
// Возвращает удаленную запись для текста ответа.
func (s *UserService) Delete(principalID, id int) (*model.User, error) {
	user, err := s.userStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(user.ID, principalID); err != nil {
		return nil, err
	}
	if err := s.userStore.Delete(id); err != nil {
		return nil, err
	}
	return user, nil
}
