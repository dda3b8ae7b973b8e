// Package apperr содержит sentinel-ошибки доменного уровня.
// Вызывающий код сопоставляет их через errors.Is; слой HTTP транслирует
// каждую ошибку в соответствующий статус ответа.
package apperr

import "errors"

var (
	// ErrValidation - некорректные или неполные данные запроса.
	ErrValidation = errors.New("некорректные данные запроса")

	// ErrAuthentication - учетные данные не подтверждены. Текст намеренно
	// не уточняет, что именно было неверным.
	ErrAuthentication = errors.New("неверные учетные данные, попробуйте еще раз")

	// ErrAuthorization - пользователь аутентифицирован, но не является владельцем ресурса.
	ErrAuthorization = errors.New("операция разрешена только владельцу")

	// ErrNotFound - запись с указанным идентификатором не существует.
	ErrNotFound = errors.New("запись не найдена")

	// ErrConflict - нарушение уникальности (занятые username/email).
	ErrConflict = errors.New("пользователь с таким именем или email уже существует")
)
