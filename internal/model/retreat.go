package model

import "time"

// Retreat представляет ретрит — предложение, доступное для бронирования.
type Retreat struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Location    string    `db:"location" json:"location"`
	Description string    `db:"description" json:"description"`
	Duration    string    `db:"duration" json:"duration"`
	Date        time.Time `db:"date" json:"date"`
	Cost        string    `db:"cost" json:"cost"`
	AuthorID    int       `db:"author_id" json:"authorId"` // назначается при создании и далее не меняется
}
