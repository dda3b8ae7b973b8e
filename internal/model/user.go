package model

import "time"

// User представляет зарегистрированного пользователя и его учетные данные.
// Token и TokenExpiration либо оба заполнены, либо оба NULL; просроченный
// токен при аутентификации считается отсутствующим.
type User struct {
	ID              int        `db:"id" json:"id"`
	FirstName       string     `db:"first_name" json:"firstName"`
	LastName        string     `db:"last_name" json:"lastName"`
	Email           string     `db:"email" json:"email"`
	Username        string     `db:"username" json:"username"`
	PasswordHash    string     `db:"password_hash" json:"-"`
	Token           *string    `db:"token" json:"-"`
	TokenExpiration *time.Time `db:"token_expiration" json:"-"`
	DateCreated     time.Time  `db:"date_created" json:"-"`
}
