package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"videohub-backend/internal/domains/video/model"
	"videohub-backend/internal/domains/video/repository"
)

type VideoService struct {
	repo repository.VideoRepository
}

var _ ServiceInterface = (*VideoService)(nil)

func NewVideoService(repo repository.VideoRepository) *VideoService {
	return &VideoService{repo: repo}
}

func (s *VideoService) CreateVideo(ctx context.Context, req model.CreateVideoRequest) (*model.VideoResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, model.NewFieldsRequiredError(err)
	}

	video, err := s.repo.Create(ctx, req.ToVideo())
	if err != nil {
		return nil, err
	}

	log.Debug().Str("video_id", video.ID).Msg("Video created")
	return video.ToResponse(), nil
}

func (s *VideoService) ListVideos(ctx context.Context) ([]*model.VideoResponse, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.VideoResponse, 0, len(videos))
	for _, v := range videos {
		responses = append(responses, v.ToResponse())
	}
	return responses, nil
}

func (s *VideoService) GetVideo(ctx context.Context, id string) (*model.VideoResponse, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return video.ToResponse(), nil
}

func (s *VideoService) UpdateVideo(ctx context.Context, id string, req model.UpdateVideoRequest) (*model.VideoResponse, error) {
	// The store rejects a record with an empty or null field
	if err := req.Validate(); err != nil {
		return nil, model.NewSchemaError(err)
	}

	video, err := s.repo.Update(ctx, id, req.ToPatch())
	if err != nil {
		return nil, err
	}

	log.Debug().Str("video_id", video.ID).Msg("Video updated")
	return video.ToResponse(), nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Debug().Str("video_id", id).Msg("Video deleted")
	return nil
}
