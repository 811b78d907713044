package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"my-videos/domain/model"
	"my-videos/domain/repository"
	"my-videos/infrastructure/logger"
)

// EnsureVideoSchema creates the videos table if not exists. The UNIQUE
// constraint on code is the single source of truth for duplicates; callers
// never check-then-insert.
func EnsureVideoSchema(db *sql.DB, vendor string) error {
	var ddl string
	switch vendor {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS videos (
        id BIGSERIAL PRIMARY KEY,
        title TEXT NOT NULL,
        code TEXT NOT NULL UNIQUE
    )`
	default:
		ddl = `CREATE TABLE IF NOT EXISTS videos (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        title TEXT NOT NULL,
        code TEXT NOT NULL UNIQUE
    )`
	}
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create videos table: %w", err)
	}
	return nil
}

// seedVideos are the two bootstrap records inserted on first run.
var seedVideos = []model.Video{
	{Title: "Boris Brejcha - I Take It Smart", Code: "XA4vo1kef6g"},
	{Title: "Noku Mana - Curawaka", Code: "DU64jmOPL5k"},
}

// SeedVideos inserts the bootstrap records once; existing codes are left
// untouched so the bootstrap stays idempotent.
func SeedVideos(ctx context.Context, videoRepository repository.IVideo) error {
	for _, seed := range seedVideos {
		_, err := videoRepository.Create(ctx, seed.Title, seed.Code)
		if errors.Is(err, model.ErrDuplicateCode) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed video %s: %w", seed.Code, err)
		}
		logger.GetLogger().WithField("code", seed.Code).Info("Seed video inserted")
	}
	return nil
}
