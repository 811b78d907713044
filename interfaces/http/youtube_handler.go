package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"my-videos/domain/model"
	youtubeclient "my-videos/infrastructure/clients/youtube"
	"my-videos/infrastructure/logger"
	"my-videos/infrastructure/session"
	"my-videos/usecase"
)

// IYouTubeHandler defines the HTTP handlers backed by the external platform.
type IYouTubeHandler interface {
	GetLikedVideos(ctx *gin.Context)
	ImportLikedVideos(ctx *gin.Context)
}

type YouTubeHandler struct {
	youtubeUsecase usecase.IYouTubeUsecase
}

func NewYouTubeHandler(youtubeUsecase usecase.IYouTubeUsecase) IYouTubeHandler {
	return &YouTubeHandler{youtubeUsecase: youtubeUsecase}
}

// GetLikedVideos handles GET /videos/youtube
func (h *YouTubeHandler) GetLikedVideos(ctx *gin.Context) {
	creds, ok := sessionCredentials(ctx)
	if !ok {
		return
	}

	result, err := h.youtubeUsecase.GetLikedVideos(ctx.Request.Context(), creds)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Liked videos fetch failed")
		respondYouTubeError(ctx, err, "failed to fetch videos")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ImportLikedVideos handles GET /videos/youtube/add_all
func (h *YouTubeHandler) ImportLikedVideos(ctx *gin.Context) {
	creds, ok := sessionCredentials(ctx)
	if !ok {
		return
	}

	result, err := h.youtubeUsecase.ImportLikedVideos(ctx.Request.Context(), creds)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Liked videos import failed")
		respondYouTubeError(ctx, err, "failed to import videos")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// respondYouTubeError maps platform failures to 502; anything else, such as a
// store failure mid-import, is a plain 500.
func respondYouTubeError(ctx *gin.Context, err error, message string) {
	if errors.Is(err, usecase.ErrUpstream) {
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":   "upstream failure",
			"message": youtubeclient.SummarizeAPIError(err),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// sessionCredentials short-circuits with 401 when the session holds no
// credential bundle.
func sessionCredentials(ctx *gin.Context) (*model.CredentialBundle, bool) {
	sess := session.FromContext(ctx)
	if sess != nil {
		if creds := sess.Credentials(); creds != nil {
			return creds, true
		}
	}
	ctx.JSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthorized",
		"message": "no OAuth credentials in session; visit /authorize to grant access",
	})
	return nil, false
}
