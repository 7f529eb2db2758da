package repository

import (
	"context"

	"videohub-backend/internal/domains/video/model"
)

// =====================================================
// VIDEO REPOSITORY INTERFACE
// =====================================================

// VideoRepository is the persistence collaborator of the video domain.
// Implementations generate identifiers and maintain createdAt/updatedAt.
//
// Lookups by id return a *model.VideoError with code ErrCodeVideoNotFound when
// nothing matches, and ErrCodeInvalidID when the id cannot name a record in this
// store. Any other error is the driver's, unwrapped.
type VideoRepository interface {
	// Create inserts a new record and returns it with id and timestamps set
	Create(ctx context.Context, video *model.Video) (*model.Video, error)

	// GetByID gets a record by id
	GetByID(ctx context.Context, id string) (*model.Video, error)

	// List returns every record, most recently created first
	List(ctx context.Context) ([]*model.Video, error)

	// Update replaces the fields set on patch and refreshes updatedAt
	Update(ctx context.Context, id string, patch model.VideoPatch) (*model.Video, error)

	// Delete removes a record
	Delete(ctx context.Context, id string) error
}
