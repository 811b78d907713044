package persistence

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"

	"my-videos/domain/model"
	"my-videos/domain/repository"
	"my-videos/infrastructure/logger"
)

// VideoRepository is the SQLite implementation of IVideo using database/sql.
type VideoRepository struct{ db *sql.DB }

func NewVideoRepository(db *sql.DB) repository.IVideo { return &VideoRepository{db} }

func (r *VideoRepository) FindAll(ctx context.Context) ([]model.Video, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, code FROM videos ORDER BY id`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("sqlite: query all videos failed")
		return nil, err
	}
	defer rows.Close()

	videos := make([]model.Video, 0)
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Code); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (r *VideoRepository) FindByCode(ctx context.Context, code string) (model.Video, error) {
	var v model.Video
	row := r.db.QueryRowContext(ctx, `SELECT id, title, code FROM videos WHERE code = ?`, code)
	if err := row.Scan(&v.ID, &v.Title, &v.Code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return v, model.ErrNotFound
		}
		logger.GetLogger().WithField("error", err).Error("sqlite: query video by code failed")
		return v, err
	}
	return v, nil
}

// Create inserts inside a transaction; the UNIQUE constraint on code is the
// duplicate guard, not a prior existence check.
func (r *VideoRepository) Create(ctx context.Context, title, code string) (model.Video, error) {
	var v model.Video
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return v, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `INSERT INTO videos (title, code) VALUES (?, ?)`, title, code)
	if err != nil {
		if isUniqueViolation(err) {
			err = model.ErrDuplicateCode
			return v, err
		}
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err,
			"code":  code,
		}).Error("sqlite: insert video failed")
		return v, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return v, err
	}
	if err = tx.Commit(); err != nil {
		return v, err
	}
	return model.Video{ID: id, Title: title, Code: code}, nil
}

func (r *VideoRepository) UpdateTitle(ctx context.Context, code, title string) (model.Video, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE videos SET title = ? WHERE code = ?`, title, code)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("sqlite: update video title failed")
		return model.Video{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.Video{}, err
	}
	if affected == 0 {
		return model.Video{}, model.ErrNotFound
	}
	return r.FindByCode(ctx, code)
}

func (r *VideoRepository) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE code = ?`, code)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("sqlite: delete video failed")
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
