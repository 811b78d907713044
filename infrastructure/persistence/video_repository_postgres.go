package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"my-videos/domain/model"
	"my-videos/domain/repository"
	"my-videos/infrastructure/logger"
)

// VideoRepositoryPostgres is the PostgreSQL implementation of IVideo.
type VideoRepositoryPostgres struct{ db *sql.DB }

func NewVideoRepositoryPostgres(db *sql.DB) repository.IVideo {
	return &VideoRepositoryPostgres{db}
}

func (r *VideoRepositoryPostgres) FindAll(ctx context.Context) ([]model.Video, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, code FROM videos ORDER BY id`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("postgres: query all videos failed")
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

func (r *VideoRepositoryPostgres) FindByCode(ctx context.Context, code string) (model.Video, error) {
	var v model.Video
	row := r.db.QueryRowContext(ctx, `SELECT id, title, code FROM videos WHERE code = $1`, code)
	if err := row.Scan(&v.ID, &v.Title, &v.Code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return v, model.ErrNotFound
		}
		logger.GetLogger().WithField("error", err).Error("postgres: query video by code failed")
		return v, err
	}
	return v, nil
}

func (r *VideoRepositoryPostgres) Create(ctx context.Context, title, code string) (model.Video, error) {
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

	row := tx.QueryRowContext(ctx, `INSERT INTO videos (title, code) VALUES ($1, $2) RETURNING id`, title, code)
	if err = row.Scan(&v.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			err = model.ErrDuplicateCode
			return model.Video{}, err
		}
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err,
			"code":  code,
		}).Error("postgres: insert video failed")
		return model.Video{}, err
	}
	if err = tx.Commit(); err != nil {
		return model.Video{}, err
	}
	v.Title = title
	v.Code = code
	return v, nil
}

func (r *VideoRepositoryPostgres) UpdateTitle(ctx context.Context, code, title string) (model.Video, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE videos SET title = $1 WHERE code = $2`, title, code)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("postgres: update video title failed")
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

func (r *VideoRepositoryPostgres) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE code = $1`, code)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("postgres: delete video failed")
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
