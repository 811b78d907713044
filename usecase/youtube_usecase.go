package usecase

import (
	"context"
	"errors"
	"fmt"

	"my-videos/domain/dto"
	"my-videos/domain/model"
	"my-videos/domain/repository"
	"my-videos/infrastructure/logger"
)

// LikedPlaylistID is the platform's reserved identifier for the user's liked
// videos playlist.
const LikedPlaylistID = "LM"

// likedPageSize caps a liked-videos fetch at the platform's own page limit.
const likedPageSize = 50

// ErrUpstream marks a failure of the external platform call. Storage failures
// during an import do not carry it.
var ErrUpstream = errors.New("upstream failure")

// IYouTubeUsecase defines the operations backed by the external platform.
type IYouTubeUsecase interface {
	GetLikedVideos(ctx context.Context, creds *model.CredentialBundle) (*dto.PlaylistItemsResult, error)
	// ImportLikedVideos stores fetched entries, skipping codes already present.
	ImportLikedVideos(ctx context.Context, creds *model.CredentialBundle) (dto.ResImport, error)
}

type YouTubeUsecase struct {
	youtubeRepo repository.IYouTube
	videoRepo   repository.IVideo
}

func NewYouTubeUsecase(youtubeRepo repository.IYouTube, videoRepo repository.IVideo) IYouTubeUsecase {
	return &YouTubeUsecase{youtubeRepo: youtubeRepo, videoRepo: videoRepo}
}

func (u *YouTubeUsecase) GetLikedVideos(ctx context.Context, creds *model.CredentialBundle) (*dto.PlaylistItemsResult, error) {
	result, err := u.youtubeRepo.ListPlaylistItems(ctx, creds, LikedPlaylistID, likedPageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch liked videos: %w", ErrUpstream, err)
	}
	return result, nil
}

func (u *YouTubeUsecase) ImportLikedVideos(ctx context.Context, creds *model.CredentialBundle) (dto.ResImport, error) {
	result, err := u.youtubeRepo.ListPlaylistItems(ctx, creds, LikedPlaylistID, likedPageSize)
	if err != nil {
		return dto.ResImport{}, fmt.Errorf("%w: failed to fetch liked videos: %w", ErrUpstream, err)
	}

	res := dto.ResImport{Result: "videos added"}
	for _, item := range result.Items {
		if _, err := u.videoRepo.Create(ctx, item.Title, item.Code); err != nil {
			if errors.Is(err, model.ErrDuplicateCode) {
				res.Skipped++
				continue
			}
			return dto.ResImport{}, fmt.Errorf("failed to store video %s: %w", item.Code, err)
		}
		res.Imported++
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"imported": res.Imported,
		"skipped":  res.Skipped,
	}).Info("Liked videos import finished")
	return res, nil
}
