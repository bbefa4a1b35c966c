package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Tomyshh/frank-melloul-website/internal/config"
	"github.com/Tomyshh/frank-melloul-website/internal/domain/admin"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/requests"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/responses"
	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
)

// AdminVideoHandler exposes the session-gated video management endpoints.
type AdminVideoHandler struct {
	cfg     *config.Config
	service *admin.Service
	urls    responses.PublicURLResolver
	log     zerolog.Logger
}

func NewAdminVideoHandler(cfg *config.Config, service *admin.Service, urls responses.PublicURLResolver, log zerolog.Logger) *AdminVideoHandler {
	return &AdminVideoHandler{
		cfg:     cfg,
		service: service,
		urls:    urls,
		log:     log.With().Str("component", "admin-video-handler").Logger(),
	}
}

// List returns every video row, drafts included.
func (h *AdminVideoHandler) List(c *gin.Context) {
	rows, err := h.service.ListVideos(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list videos")
		return
	}
	c.JSON(http.StatusOK, responses.NewAdminVideoListResponse(rows, h.urls))
}

// Create handles a multipart video submission. Both files are mandatory;
// validation rejects the request before anything is uploaded.
func (h *AdminVideoHandler) Create(c *gin.Context) {
	var form requests.VideoForm
	if err := c.ShouldBind(&form); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error())
		return
	}

	video, closeVideo, ok := h.formAsset(c, "video")
	if !ok {
		return
	}
	if closeVideo != nil {
		defer closeVideo()
	}
	thumbnail, closeThumb, ok := h.formAsset(c, "thumbnail")
	if !ok {
		return
	}
	if closeThumb != nil {
		defer closeThumb()
	}

	var steps []responses.StepEvent
	rec, err := h.service.CreateVideo(c.Request.Context(), form.ToDomain(), video, thumbnail, func(step admin.Step) {
		steps = append(steps, responses.NewStepEvent(step))
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create video")
		return
	}

	c.JSON(http.StatusCreated, responses.AdminVideoRecordResponse{
		Video: responses.NewAdminVideoResponse(*rec, h.urls),
		Steps: steps,
	})
}

// Update handles a multipart edit. Either file part may be absent to keep
// the existing asset. A partial outcome still returns the updated record,
// with the warning and a 207 status.
func (h *AdminVideoHandler) Update(c *gin.Context) {
	var form requests.VideoForm
	if err := c.ShouldBind(&form); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error())
		return
	}

	video, closeVideo, ok := h.formAsset(c, "video")
	if !ok {
		return
	}
	if closeVideo != nil {
		defer closeVideo()
	}
	thumbnail, closeThumb, ok := h.formAsset(c, "thumbnail")
	if !ok {
		return
	}
	if closeThumb != nil {
		defer closeThumb()
	}

	var steps []responses.StepEvent
	rec, err := h.service.UpdateVideo(c.Request.Context(), c.Param("id"), form.ToDomain(), video, thumbnail, func(step admin.Step) {
		steps = append(steps, responses.NewStepEvent(step))
	})
	if err != nil && rec == nil {
		responses.HandleError(c, err, "failed to update video")
		return
	}

	resp := responses.AdminVideoRecordResponse{
		Video:   responses.NewAdminVideoResponse(*rec, h.urls),
		Steps:   steps,
		Warning: responses.Warning(err),
	}
	if resp.Warning != "" {
		c.JSON(http.StatusMultiStatus, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete removes a video after title confirmation.
func (h *AdminVideoHandler) Delete(c *gin.Context) {
	var req requests.DeleteRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error())
		return
	}

	err := h.service.DeleteVideo(c.Request.Context(), c.Param("id"), req.ConfirmTitle)
	if err != nil {
		if warning := responses.Warning(err); warning != "" {
			c.JSON(http.StatusMultiStatus, responses.DeleteResponse{Deleted: true, Warning: warning})
			return
		}
		responses.HandleError(c, err, "failed to delete video")
		return
	}
	c.JSON(http.StatusOK, responses.DeleteResponse{Deleted: true})
}

// TogglePublish flips the publish flag and returns the refreshed list.
func (h *AdminVideoHandler) TogglePublish(c *gin.Context) {
	rows, err := h.service.TogglePublishVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.HandleError(c, err, "failed to toggle video publication")
		return
	}
	c.JSON(http.StatusOK, responses.NewAdminVideoListResponse(rows, h.urls))
}

// formAsset reads an optional file part. The bool result is false only
// when the request was already answered with an error.
func (h *AdminVideoHandler) formAsset(c *gin.Context, field string) (*admin.Asset, func(), bool) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, true
		}
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, fmt.Sprintf("read %s part: %v", field, err))
		return nil, nil, false
	}
	asset, closer, err := requests.OpenAsset(header, h.cfg.MaxMediaBytes)
	if err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error())
		return nil, nil, false
	}
	return asset, closer, true
}
