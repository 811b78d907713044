package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"my-videos/domain/dto"
	"my-videos/domain/model"
	"my-videos/infrastructure/logger"
	"my-videos/usecase"
)

// IVideoHandler defines the HTTP handlers for the stored video collection.
type IVideoHandler interface {
	GetAll(ctx *gin.Context)
	GetByCode(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// GetAll handles GET /videos/
func (h *VideoHandler) GetAll(ctx *gin.Context) {
	videos, err := h.videoUsecase.GetAll(ctx.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing videos")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list videos"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"videos": videos})
}

// GetByCode handles GET /videos/:code
func (h *VideoHandler) GetByCode(ctx *gin.Context) {
	code := ctx.Param("code")
	video, err := h.videoUsecase.GetByCode(ctx.Request.Context(), code)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while fetching video")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch video"})
		return
	}
	ctx.JSON(http.StatusOK, video)
}

// Create handles POST /videos/
func (h *VideoHandler) Create(ctx *gin.Context) {
	var req dto.ReqCreateVideo
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Title == "" || req.Code == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "title and code are required"})
		return
	}

	if _, err := h.videoUsecase.Add(ctx.Request.Context(), req); err != nil {
		if errors.Is(err, model.ErrDuplicateCode) {
			ctx.JSON(http.StatusConflict, dto.Res{Result: "video already on database"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while adding video")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add video"})
		return
	}
	ctx.JSON(http.StatusOK, dto.Res{Result: "video added"})
}

// Update handles PUT /videos/:code
func (h *VideoHandler) Update(ctx *gin.Context) {
	code := ctx.Param("code")

	var req dto.ReqUpdateVideo
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while unmarshal")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Title == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if _, err := h.videoUsecase.UpdateTitle(ctx.Request.Context(), code, req.Title); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while updating video")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update video"})
		return
	}
	ctx.JSON(http.StatusOK, dto.Res{Result: "video updated"})
}

// Delete handles DELETE /videos/:code
func (h *VideoHandler) Delete(ctx *gin.Context) {
	code := ctx.Param("code")
	if err := h.videoUsecase.Delete(ctx.Request.Context(), code); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "video not found"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while deleting video")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete video"})
		return
	}
	ctx.JSON(http.StatusOK, dto.Res{Result: "video deleted"})
}
