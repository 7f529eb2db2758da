package service

import (
	"context"

	"videohub-backend/internal/domains/video/model"
)

// =====================================================
// VIDEO SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// CreateVideo validates presence of every field and stores a new record
	CreateVideo(ctx context.Context, req model.CreateVideoRequest) (*model.VideoResponse, error)

	// ListVideos lists every record, most recent first
	ListVideos(ctx context.Context) ([]*model.VideoResponse, error)

	// GetVideo gets one record by id
	GetVideo(ctx context.Context, id string) (*model.VideoResponse, error)

	// UpdateVideo replaces the supplied fields of a record
	UpdateVideo(ctx context.Context, id string, req model.UpdateVideoRequest) (*model.VideoResponse, error)

	// DeleteVideo removes a record
	DeleteVideo(ctx context.Context, id string) error
}
