package persistence

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"my-videos/domain/model"
)

func TestVideoRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, code FROM videos ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "code"}).
			AddRow(1, "Boris Brejcha - I Take It Smart", "XA4vo1kef6g").
			AddRow(2, "Noku Mana - Curawaka", "DU64jmOPL5k"))

	res, err := repository.FindAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Video{
		{ID: 1, Title: "Boris Brejcha - I Take It Smart", Code: "XA4vo1kef6g"},
		{ID: 2, Title: "Noku Mana - Curawaka", Code: "DU64jmOPL5k"},
	}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_FindByCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, code FROM videos WHERE code = ?`)).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "code"}).
			AddRow(7, "A", "abc123"))

	res, err := repository.FindByCode(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, model.Video{ID: 7, Title: "A", Code: "abc123"}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_FindByCode_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, code FROM videos WHERE code = ?`)).
		WithArgs("doesnotexist").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "code"}))

	_, err = repository.FindByCode(context.Background(), "doesnotexist")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO videos (title, code) VALUES (?, ?)`)).
		WithArgs("A", "abc123").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	res, err := repository.Create(context.Background(), "A", "abc123")
	require.NoError(t, err)
	require.Equal(t, model.Video{ID: 3, Title: "A", Code: "abc123"}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Create_DuplicateCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO videos (title, code) VALUES (?, ?)`)).
		WithArgs("A", "abc123").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})
	mock.ExpectRollback()

	_, err = repository.Create(context.Background(), "A", "abc123")
	require.ErrorIs(t, err, model.ErrDuplicateCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_UpdateTitle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE videos SET title = ? WHERE code = ?`)).
		WithArgs("B", "abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, code FROM videos WHERE code = ?`)).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "code"}).
			AddRow(7, "B", "abc123"))

	res, err := repository.UpdateTitle(context.Background(), "abc123", "B")
	require.NoError(t, err)
	require.Equal(t, model.Video{ID: 7, Title: "B", Code: "abc123"}, res)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_UpdateTitle_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE videos SET title = ? WHERE code = ?`)).
		WithArgs("B", "doesnotexist").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repository.UpdateTitle(context.Background(), "doesnotexist", "B")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM videos WHERE code = ?`)).
		WithArgs("abc123").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repository.Delete(context.Background(), "abc123"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM videos WHERE code = ?`)).
		WithArgs("doesnotexist").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repository.Delete(context.Background(), "doesnotexist")
	require.ErrorIs(t, err, model.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_FindAll_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewVideoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, code FROM videos ORDER BY id`)).
		WillReturnError(fmt.Errorf("query error"))

	_, err = repository.FindAll(context.Background())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
