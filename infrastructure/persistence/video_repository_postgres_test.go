package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"my-videos/domain/model"
)

func TestVideoRepositoryPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepositoryPostgres(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO videos (title, code) VALUES ($1, $2) RETURNING id`)).
		WithArgs("A", "abc123").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	res, err := repository.Create(context.Background(), "A", "abc123")
	require.NoError(t, err)
	require.Equal(t, model.Video{ID: 11, Title: "A", Code: "abc123"}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepositoryPostgres_Create_DuplicateCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepositoryPostgres(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO videos (title, code) VALUES ($1, $2) RETURNING id`)).
		WithArgs("A", "abc123").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err = repository.Create(context.Background(), "A", "abc123")
	require.ErrorIs(t, err, model.ErrDuplicateCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepositoryPostgres_FindByCode_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepositoryPostgres(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, code FROM videos WHERE code = $1`)).
		WithArgs("doesnotexist").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "code"}))

	_, err = repository.FindByCode(context.Background(), "doesnotexist")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
