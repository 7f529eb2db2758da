package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"videohub-backend/internal/domains/video/model"
	"videohub-backend/internal/domains/video/service"
	"videohub-backend/internal/shared/response"
)

// =====================================================
// VIDEO HANDLER
// =====================================================

type VideoHandler struct {
	videoService service.ServiceInterface
}

func NewVideoHandler(videoService service.ServiceInterface) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// Create creates a new video
// POST /api/videos
func (h *VideoHandler) Create(c *gin.Context) {
	var req model.CreateVideoRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, model.NewInvalidBodyError(err))
		return
	}

	video, err := h.videoService.CreateVideo(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, video)
}

// List lists every video, most recent first
// GET /api/videos
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videoService.ListVideos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, videos)
}

// GetByID gets one video
// GET /api/videos/:id
func (h *VideoHandler) GetByID(c *gin.Context) {
	video, err := h.videoService.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, video)
}

// Update replaces the fields given in the body
// PUT /api/videos/:id
func (h *VideoHandler) Update(c *gin.Context) {
	var req model.UpdateVideoRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, model.NewInvalidBodyError(err))
		return
	}

	video, err := h.videoService.UpdateVideo(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, video)
}

// Delete removes a video
// DELETE /api/videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoService.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	response.Message(c, http.StatusOK, model.MsgVideoDeleted)
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

// bindJSON decodes the body; an empty body reads as {}
func bindJSON(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// respondError is the single error -> status rule for every video endpoint
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	statusCode := mapVideoError(err)

	var videoErr *model.VideoError
	if errors.As(err, &videoErr) && videoErr.Details != nil {
		response.ErrorWithDetails(c, statusCode, videoErr.Message, videoErr.Details)
		return
	}
	response.Error(c, statusCode, err.Error())
}

// mapVideoError maps video error to HTTP status code.
// Everything else, schema violations on update included, lands on 500.
func mapVideoError(err error) int {
	var videoErr *model.VideoError
	if errors.As(err, &videoErr) {
		switch videoErr.Code {
		case model.ErrCodeValidation:
			return http.StatusBadRequest
		case model.ErrCodeVideoNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}
