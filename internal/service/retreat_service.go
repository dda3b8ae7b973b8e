package service

import (
	"time"

	"retreats/internal/model"
)

// RetreatInput - данные создания или полной замены ретрита.
type RetreatInput struct {
	Name        string    `json:"name" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Duration    string    `json:"duration" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Cost        string    `json:"cost" binding:"required"`
}

// RetreatService содержит бизнес-логику, связанную с ретритами.
type RetreatService struct {
	retreatStore RetreatStore
}

// NewRetreatService создает новый сервис ретритов.
func NewRetreatService(retreatStore RetreatStore) *RetreatService {
	return &RetreatService{retreatStore: retreatStore}
}

// Create создает ретрит. Принципал становится автором; автор неизменяем.
func (s *RetreatService) Create(authorID int, input RetreatInput) (*model.Retreat, error) {
	retreat := &model.Retreat{
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
		Cost:        input.Cost,
		AuthorID:    authorID,
	}
	id, err := s.retreatStore.Create(retreat)
	if err != nil {
		return nil, err
	}
	retreat.ID = id
	return retreat, nil
}

// List возвращает все ретриты.
func (s *RetreatService) List() ([]model.Retreat, error) {
	return s.retreatStore.FindAll()
}

// GetByID возвращает ретрит по ID.
func (s *RetreatService) GetByID(id int) (*model.Retreat, error) {
	return s.retreatStore.GetByID(id)
}

// Update полностью заменяет редактируемые поля ретрита.
// Операция разрешена только автору.
func (s *RetreatService) Update(principalID, id int, input RetreatInput) (*model.Retreat, error) {
	retreat, err := s.retreatStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(retreat.AuthorID, principalID); err != nil {
		return nil, err
	}
	retreat.Name = input.Name
	retreat.Location = input.Location
	retreat.Description = input.Description
	retreat.Duration = input.Duration
	retreat.Date = input.Date
	retreat.Cost = input.Cost
	if err := s.retreatStore.Update(retreat); err != nil {
		return nil, err
	}
	return retreat, nil
}

// Delete удаляет ретрит. Операция разрешена только автору.
// Возвращает удаленную запись для текста ответа.
func (s *RetreatService) Delete(principalID, id int) (*model.Retreat, error) {
	retreat, err := s.retreatStore.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(retreat.AuthorID, principalID); err != nil {
		return nil, err
	}
	if err := s.retreatStore.Delete(id); err != nil {
		return nil, err
	}
	return retreat, nil
}
