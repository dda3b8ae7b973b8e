package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"retreats/internal/apperr"
	"retreats/internal/model"

	"golang.org/x/crypto/bcrypt"
)

const (
	// tokenBytes - энтропия токена до base64-кодирования.
	tokenBytes = 24
	// tokenValidity - срок жизни выпущенного токена.
	tokenValidity = time.Hour
	// renewalMargin - запас до истечения, при котором токен еще переиспользуется.
	renewalMargin = time.Minute
)

// AuthService отвечает за хранение паролей, жизненный цикл токенов и
// определение аутентифицированного пользователя по учетным данным запроса.
type AuthService struct {
	userStore UserStore
	now       func() time.Time
}

// NewAuthService создает новый сервис аутентификации.
func NewAuthService(userStore UserStore) *AuthService {
	return &AuthService{userStore: userStore, now: time.Now}
}

// SetPassword вычисляет соленый bcrypt-хеш пароля и записывает его в структуру
// пользователя. Открытый пароль нигде не сохраняется и не логируется; запись
// в базу выполняет вызывающий код вместе с остальными полями, чтобы изменение
// оставалось в одной транзакции.
func (s *AuthService) SetPassword(user *model.User, plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("не удалось вычислить хеш пароля: %w", err)
	}
	user.PasswordHash = string(hash)
	return nil
}

// CheckPassword проверяет открытый пароль против сохраненного хеша.
// Сравнение внутри bcrypt выполняется за константное время.
func (s *AuthService) CheckPassword(user *model.User, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(plaintext)) == nil
}

// GetOrIssueToken возвращает действующий токен пользователя или выпускает
// новый. Пока до истечения срока остается больше renewalMargin, повторные
// запросы получают тот же токен и не инвалидируют уже выданный.
func (s *AuthService) GetOrIssueToken(user *model.User) (string, time.Time, error) {
	now := s.now().UTC()
	if user.Token != nil && user.TokenExpiration != nil && user.TokenExpiration.After(now.Add(renewalMargin)) {
		return *user.Token, *user.TokenExpiration, nil
	}
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, fmt.Errorf("не удалось сгенерировать токен: %w", err)
	}
	token := base64.StdEncoding.EncodeToString(buf)
	expiration := now.Add(tokenValidity)
	if err := s.userStore.UpdateToken(user.ID, token, expiration); err != nil {
		return "", time.Time{}, err
	}
	user.Token = &token
	user.TokenExpiration = &expiration
	return token, expiration, nil
}

// ValidateToken находит пользователя по токену. Просроченный или неизвестный
// токен дает apperr.ErrAuthentication без уточнения причины отказа.
func (s *AuthService) ValidateToken(token string) (*model.User, error) {
	if token == "" {
		return nil, apperr.ErrAuthentication
	}
	user, err := s.userStore.GetByToken(token)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrAuthentication
		}
		return nil, err
	}
	if user.TokenExpiration == nil || !user.TokenExpiration.After(s.now().UTC()) {
		return nil, apperr.ErrAuthentication
	}
	return user, nil
}

// AuthenticateBasic проверяет пару логин/пароль и возвращает пользователя.
// Неизвестное имя и неверный пароль дают одну и ту же ошибку: ответ не
// раскрывает, что именно не совпало.
func (s *AuthService) AuthenticateBasic(username, password string) (*model.User, error) {
	user, err := s.userStore.GetByUsername(username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrAuthentication
		}
		return nil, err
	}
	if !s.CheckPassword(user, password) {
		return nil, apperr.ErrAuthentication
	}
	return user, nil
}
