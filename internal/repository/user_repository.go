package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"retreats/internal/apperr"
	"retreats/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт новый репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create добавляет нового пользователя в базу. Возвращает ID созданной записи.
// Нарушение уникальности username/email транслируется в apperr.ErrConflict.
func (r *UserRepository) Create(user *model.User) (int, error) {
	query := `INSERT INTO users (first_name, last_name, email, username, password_hash)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRow(query, user.FirstName, user.LastName, user.Email, user.Username, user.PasswordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return id, nil
}

// GetByID возвращает пользователя по внутреннему идентификатору.
func (r *UserRepository) GetByID(id int) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE id=$1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	return &user, nil
}

// GetByUsername ищет пользователя по имени. Сравнение чувствительно к регистру.
func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE username=$1", username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	return &user, nil
}

// GetByToken ищет пользователя по выданному токену. Колонка token уникальна
// и проиндексирована, поэтому совпадение может быть только одно.
func (r *UserRepository) GetByToken(token string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, "SELECT * FROM users WHERE token=$1", token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске пользователя по токену: %w", err)
	}
	return &user, nil
}

// ExistsByUsernameOrEmail проверяет, занято ли имя пользователя или email.
func (r *UserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int
	err := r.db.Get(&count, "SELECT COUNT(*) FROM users WHERE username=$1 OR email=$2", username, email)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке уникальности пользователя: %w", err)
	}
	return count > 0, nil
}

// Update сохраняет измененные поля профиля одним запросом.
func (r *UserRepository) Update(user *model.User) error {
	query := `UPDATE users SET first_name=$1, last_name=$2, email=$3, username=$4, password_hash=$5
	          WHERE id=$6`
	_, err := r.db.Exec(query, user.FirstName, user.LastName, user.Email, user.Username, user.PasswordHash, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("не удалось обновить пользователя: %w", err)
	}
	return nil
}

// UpdateToken записывает новый токен пользователя и срок его действия.
func (r *UserRepository) UpdateToken(userID int, token string, expiration time.Time) error {
	_, err := r.db.Exec("UPDATE users SET token=$1, token_expiration=$2 WHERE id=$3", token, expiration, userID)
	if err != nil {
		return fmt.Errorf("не удалось сохранить токен: %w", err)
	}
	return nil
}

// Delete удаляет пользователя.
func (r *UserRepository) Delete(id int) error {
	res, err := r.db.Exec("DELETE FROM users WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить пользователя: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// isUniqueViolation сообщает, является ли ошибка нарушением уникального
// ограничения PostgreSQL (код 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
