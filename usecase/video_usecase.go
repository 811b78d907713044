package usecase

import (
	"context"
	"fmt"

	"my-videos/domain/dto"
	"my-videos/domain/repository"
)

// IVideoUsecase defines the operations over the favorite video store.
type IVideoUsecase interface {
	GetAll(ctx context.Context) ([]dto.VideoResponse, error)
	GetByCode(ctx context.Context, code string) (dto.VideoResponse, error)
	Add(ctx context.Context, req dto.ReqCreateVideo) (dto.VideoResponse, error)
	UpdateTitle(ctx context.Context, code, title string) (dto.VideoResponse, error)
	Delete(ctx context.Context, code string) error
}

type VideoUsecase struct {
	videoRepo repository.IVideo
}

func NewVideoUsecase(videoRepo repository.IVideo) IVideoUsecase {
	return &VideoUsecase{videoRepo: videoRepo}
}

func (u *VideoUsecase) GetAll(ctx context.Context) ([]dto.VideoResponse, error) {
	videos, err := u.videoRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return dto.NewVideoListResponse(videos), nil
}

func (u *VideoUsecase) GetByCode(ctx context.Context, code string) (dto.VideoResponse, error) {
	video, err := u.videoRepo.FindByCode(ctx, code)
	if err != nil {
		return dto.VideoResponse{}, err
	}
	return dto.NewVideoResponse(video), nil
}

func (u *VideoUsecase) Add(ctx context.Context, req dto.ReqCreateVideo) (dto.VideoResponse, error) {
	video, err := u.videoRepo.Create(ctx, req.Title, req.Code)
	if err != nil {
		return dto.VideoResponse{}, err
	}
	return dto.NewVideoResponse(video), nil
}

func (u *VideoUsecase) UpdateTitle(ctx context.Context, code, title string) (dto.VideoResponse, error) {
	video, err := u.videoRepo.UpdateTitle(ctx, code, title)
	if err != nil {
		return dto.VideoResponse{}, err
	}
	return dto.NewVideoResponse(video), nil
}

func (u *VideoUsecase) Delete(ctx context.Context, code string) error {
	return u.videoRepo.Delete(ctx, code)
}
