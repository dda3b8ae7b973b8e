package model

// Booking представляет бронирование ретрита пользователем.
// Пара (user_id, retreat_id) уникальна на уровне базы данных.
type Booking struct {
	ID        int `db:"id" json:"id"`
	UserID    int `db:"user_id" json:"userId"`
	RetreatID int `db:"retreat_id" json:"retreatId"`
}
