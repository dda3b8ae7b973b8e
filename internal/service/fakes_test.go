package service

import (
	"time"

	"retreats/internal/apperr"
	"retreats/internal/model"
)

// Хранилища в памяти для тестов сервисов. Методы возвращают копии записей:
// сервисы не должны полагаться на идентичность указателей.

type fakeUserStore struct {
	users  map[int]*model.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]*model.User{}}
}

func (f *fakeUserStore) Create(user *model.User) (int, error) {
	if exists, _ := f.ExistsByUsernameOrEmail(user.Username, user.Email); exists {
		return 0, apperr.ErrConflict
	}
	f.nextID++
	u := *user
	u.ID = f.nextID
	f.users[u.ID] = &u
	return u.ID, nil
}

func (f *fakeUserStore) GetByID(id int) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserStore) GetByToken(token string) (*model.User, error) {
	for _, u := range f.users {
		if u.Token != nil && *u.Token == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (f *fakeUserStore) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) Update(user *model.User) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.Username = user.Username
	stored.Email = user.Email
	stored.PasswordHash = user.PasswordHash
	return nil
}

func (f *fakeUserStore) UpdateToken(userID int, token string, expiration time.Time) error {
	stored, ok := f.users[userID]
	if !ok {
		return apperr.ErrNotFound
	}
	t, e := token, expiration
	stored.Token = &t
	stored.TokenExpiration = &e
	return nil
}

func (f *fakeUserStore) Delete(id int) error {
	if _, ok := f.users[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeRetreatStore struct {
	retreats map[int]*model.Retreat
	nextID   int
}

func newFakeRetreatStore() *fakeRetreatStore {
	return &fakeRetreatStore{retreats: map[int]*model.Retreat{}}
}

func (f *fakeRetreatStore) Create(retreat *model.Retreat) (int, error) {
	f.nextID++
	r := *retreat
	r.ID = f.nextID
	f.retreats[r.ID] = &r
	return r.ID, nil
}

func (f *fakeRetreatStore) FindAll() ([]model.Retreat, error) {
	all := []model.Retreat{}
	for id := 1; id <= f.nextID; id++ {
		if r, ok := f.retreats[id]; ok {
			all = append(all, *r)
		}
	}
	return all, nil
}

func (f *fakeRetreatStore) GetByID(id int) (*model.Retreat, error) {
	r, ok := f.retreats[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRetreatStore) Update(retreat *model.Retreat) error {
	stored, ok := f.retreats[retreat.ID]
	if !ok {
		return apperr.ErrNotFound
	}
	author := stored.AuthorID
	*stored = *retreat
	stored.AuthorID = author
	return nil
}

func (f *fakeRetreatStore) Delete(id int) error {
	if _, ok := f.retreats[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.retreats, id)
	return nil
}

type fakeBookingStore struct {
	bookings map[int]*model.Booking
	nextID   int
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{bookings: map[int]*model.Booking{}}
}

func (f *fakeBookingStore) Create(userID, retreatID int) (int, bool, error) {
	// имитация уникального ограничения (user_id, retreat_id)
	for _, b := range f.bookings {
		if b.UserID == userID && b.RetreatID == retreatID {
			return 0, false, nil
		}
	}
	f.nextID++
	f.bookings[f.nextID] = &model.Booking{ID: f.nextID, UserID: userID, RetreatID: retreatID}
	return f.nextID, true, nil
}

func (f *fakeBookingStore) GetByID(id int) (*model.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingStore) ListByUser(userID int) ([]model.Booking, error) {
	list := []model.Booking{}
	for id := 1; id <= f.nextID; id++ {
		if b, ok := f.bookings[id]; ok && b.UserID == userID {
			list = append(list, *b)
		}
	}
	return list, nil
}

func (f *fakeBookingStore) Delete(id int) error {
	if _, ok := f.bookings[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}
