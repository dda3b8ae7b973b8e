package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"retreats/internal/apperr"
	"retreats/internal/model"

	"github.com/jmoiron/sqlx"
)

// RetreatRepository обеспечивает доступ к данным ретритов в базе данных.
type RetreatRepository struct {
	db *sqlx.DB
}

// NewRetreatRepository создает новый репозиторий ретритов.
func NewRetreatRepository(db *sqlx.DB) *RetreatRepository {
	return &RetreatRepository{db: db}
}

// Create добавляет новый ретрит. Автор фиксируется при создании и
// последующими запросами не меняется.
func (r *RetreatRepository) Create(retreat *model.Retreat) (int, error) {
	query := `INSERT INTO retreats (name, location, description, duration, date, cost, author_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int
	err := r.db.QueryRow(query, retreat.Name, retreat.Location, retreat.Description,
		retreat.Duration, retreat.Date, retreat.Cost, retreat.AuthorID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать ретрит: %w", err)
	}
	return id, nil
}

// FindAll возвращает все ретриты.
func (r *RetreatRepository) FindAll() ([]model.Retreat, error) {
	retreats := []model.Retreat{}
	err := r.db.Select(&retreats, "SELECT * FROM retreats ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка ретритов: %w", err)
	}
	return retreats, nil
}

// GetByID получает ретрит по его идентификатору.
func (r *RetreatRepository) GetByID(id int) (*model.Retreat, error) {
	var retreat model.Retreat
	err := r.db.Get(&retreat, "SELECT * FROM retreats WHERE id=$1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске ретрита: %w", err)
	}
	return &retreat, nil
}

// Update сохраняет измененные поля ретрита. Колонка author_id не входит
// в запрос: автор неизменяем.
func (r *RetreatRepository) Update(retreat *model.Retreat) error {
	query := `UPDATE retreats SET name=$1, location=$2, description=$3, duration=$4, date=$5, cost=$6
	          WHERE id=$7`
	_, err := r.db.Exec(query, retreat.Name, retreat.Location, retreat.Description,
		retreat.Duration, retreat.Date, retreat.Cost, retreat.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить ретрит: %w", err)
	}
	return nil
}

// Delete удаляет ретрит.
func (r *RetreatRepository) Delete(id int) error {
	res, err := r.db.Exec("DELETE FROM retreats WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить ретрит: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
