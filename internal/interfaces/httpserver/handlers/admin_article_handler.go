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

// AdminArticleHandler exposes the session-gated article management
// endpoints. Articles carry one image asset instead of the video pair.
type AdminArticleHandler struct {
	cfg     *config.Config
	service *admin.Service
	urls    responses.PublicURLResolver
	log     zerolog.Logger
}

func NewAdminArticleHandler(cfg *config.Config, service *admin.Service, urls responses.PublicURLResolver, log zerolog.Logger) *AdminArticleHandler {
	return &AdminArticleHandler{
		cfg:     cfg,
		service: service,
		urls:    urls,
		log:     log.With().Str("component", "admin-article-handler").Logger(),
	}
}

func (h *AdminArticleHandler) List(c *gin.Context) {
	rows, err := h.service.ListArticles(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list articles")
		return
	}
	c.JSON(http.StatusOK, responses.NewAdminArticleListResponse(rows, h.urls))
}

func (h *AdminArticleHandler) Create(c *gin.Context) {
	var form requests.ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error())
		return
	}

	image, closeImage, ok := h.formAsset(c, "image")
	if !ok {
		return
	}
	if closeImage != nil {
		defer closeImage()
	}

	var steps []responses.StepEvent
	rec, err := h.service.CreateArticle(c.Request.Context(), form.ToDomain(), image, func(step admin.Step) {
		steps = append(steps, responses.NewStepEvent(step))
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create article")
		return
	}

	c.JSON(http.StatusCreated, responses.AdminArticleRecordResponse{
		Article: responses.NewAdminArticleResponse(*rec, h.urls),
		Steps:   steps,
	})
}

func (h *AdminArticleHandler) Update(c *gin.Context) {
	var form requests.ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error())
		return
	}

	image, closeImage, ok := h.formAsset(c, "image")
	if !ok {
		return
	}
	if closeImage != nil {
		defer closeImage()
	}

	var steps []responses.StepEvent
	rec, err := h.service.UpdateArticle(c.Request.Context(), c.Param("id"), form.ToDomain(), image, func(step admin.Step) {
		steps = append(steps, responses.NewStepEvent(step))
	})
	if err != nil && rec == nil {
		responses.HandleError(c, err, "failed to update article")
		return
	}

	resp := responses.AdminArticleRecordResponse{
		Article: responses.NewAdminArticleResponse(*rec, h.urls),
		Steps:   steps,
		Warning: responses.Warning(err),
	}
	if resp.Warning != "" {
		c.JSON(http.StatusMultiStatus, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminArticleHandler) Delete(c *gin.Context) {
	var req requests.DeleteRequest
	if err := c.ShouldBind(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, err.Error())
		return
	}

	err := h.service.DeleteArticle(c.Request.Context(), c.Param("id"), req.ConfirmTitle)
	if err != nil {
		if warning := responses.Warning(err); warning != "" {
			c.JSON(http.StatusMultiStatus, responses.DeleteResponse{Deleted: true, Warning: warning})
			return
		}
		responses.HandleError(c, err, "failed to delete article")
		return
	}
	c.JSON(http.StatusOK, responses.DeleteResponse{Deleted: true})
}

func (h *AdminArticleHandler) TogglePublish(c *gin.Context) {
	rows, err := h.service.TogglePublishArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.HandleError(c, err, "failed to toggle article publication")
		return
	}
	c.JSON(http.StatusOK, responses.NewAdminArticleListResponse(rows, h.urls))
}

func (h *AdminArticleHandler) formAsset(c *gin.Context, field string) (*admin.Asset, func(), bool) {
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
