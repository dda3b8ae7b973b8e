package repository

import (
	"testing"

	"retreats/internal/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingRepoMock(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewBookingRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestBookingRepositoryCreate(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectQuery(`INSERT INTO bookings \(user_id, retreat_id\)`).
		WithArgs(5, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	id, created, err := repo.Create(5, 3)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 11, id)
}

func TestBookingRepositoryCreateDuplicate(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	// ON CONFLICT DO NOTHING: при дубле запрос не возвращает строк
	mock.ExpectQuery(`INSERT INTO bookings \(user_id, retreat_id\)`).
		WithArgs(5, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	id, created, err := repo.Create(5, 3)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Zero(t, id)
}

func TestBookingRepositoryListByUser(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "retreat_id"}).
		AddRow(1, 5, 3).
		AddRow(2, 5, 4)
	mock.ExpectQuery(`SELECT \* FROM bookings WHERE user_id=\$1 ORDER BY id`).
		WithArgs(5).
		WillReturnRows(rows)

	bookings, err := repo.ListByUser(5)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, 3, bookings[0].RetreatID)
	assert.Equal(t, 4, bookings[1].RetreatID)
}

func TestBookingRepositoryDeleteNotFound(t *testing.T) {
	repo, mock := newBookingRepoMock(t)

	mock.ExpectExec(`DELETE FROM bookings WHERE id=\$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(99)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
