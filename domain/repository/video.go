package repository

import (
	"context"

	"my-videos/domain/model"
)

// IVideo is the persistent store of video records.
type IVideo interface {
	FindAll(ctx context.Context) ([]model.Video, error)
	// FindByCode returns model.ErrNotFound when no record matches.
	FindByCode(ctx context.Context, code string) (model.Video, error)
	// Create inserts a new record and returns it with its assigned id.
	// A colliding code yields model.ErrDuplicateCode.
	Create(ctx context.Context, title, code string) (model.Video, error)
	// UpdateTitle mutates only the title of the record with the given code.
	UpdateTitle(ctx context.Context, code, title string) (model.Video, error)
	Delete(ctx context.Context, code string) error
}
