package admin

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	"github.com/Tomyshh/frank-melloul-website/internal/infrastructure/metrics"
	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
	"github.com/Tomyshh/frank-melloul-website/utils/recordid"
)

// Asset is one file submitted through the admin surface.
type Asset struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// VideoInput carries the text fields of a video submission. Empty optional
// fields are stored as NULL, not as empty strings.
type VideoInput struct {
	Title         string
	Description   string
	TitleEN       string
	DescriptionEN string
	IsPublished   bool
	SortOrder     int
}

// ArticleInput carries the text fields of an article submission.
type ArticleInput struct {
	Title       string
	Content     string
	TitleEN     string
	ContentEN   string
	IsPublished bool
	SortOrder   int
}

// Service orchestrates the admin media workflows: multi-step uploads, record
// writes, and orphan cleanup. Failures halt the workflow at the failing step
// and are reported as-is; earlier steps of the same invocation are never
// rolled back.
type Service struct {
	videos   content.VideoRepository
	articles content.ArticleRepository
	store    content.ObjectStore
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(videos content.VideoRepository, articles content.ArticleRepository, store content.ObjectStore, log zerolog.Logger) *Service {
	return &Service{
		videos:   videos,
		articles: articles,
		store:    store,
		log:      log.With().Str("component", "admin-workflow").Logger(),
		now:      time.Now,
	}
}

// ListVideos returns every video row, drafts included, in display order.
func (s *Service) ListVideos(ctx context.Context) ([]content.Video, error) {
	return s.videos.List(ctx, false)
}

// ListArticles returns every article row, drafts included, in display order.
func (s *Service) ListArticles(ctx context.Context) ([]content.Article, error) {
	return s.articles.List(ctx, false)
}

// CreateVideo runs the create workflow: thumbnail upload, then video upload,
// then row insert. Both assets are mandatory and validated before any
// storage or database call. A failure mid-way may leave already uploaded
// objects orphaned; they are not cleaned up.
func (s *Service) CreateVideo(ctx context.Context, in VideoInput, video, thumbnail *Asset, observe Observer) (*content.Video, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"title is required", nil)
	}
	if video == nil || thumbnail == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"video and thumbnail files are both required to create", nil)
	}

	id := recordid.New()
	uploadedAt := s.now()
	sub := newSubmission(observe)

	sub.to(StepUploadingThumbnail)
	thumbKey := ObjectKey("thumbnails", id, uploadedAt, thumbnail.Filename)
	if err := s.upload(ctx, "thumbnail", thumbKey, thumbnail); err != nil {
		sub.to(StepIdle)
		metrics.RecordWorkflow("video_create", "error")
		return nil, err
	}

	sub.to(StepUploadingPrimary)
	videoKey := ObjectKey("videos", id, uploadedAt, video.Filename)
	if err := s.upload(ctx, "video", videoKey, video); err != nil {
		sub.to(StepIdle)
		metrics.RecordWorkflow("video_create", "error")
		return nil, err
	}

	sub.to(StepWritingRecord)
	rec := &content.Video{
		ID:            id,
		Title:         in.Title,
		Description:   nullable(in.Description),
		TitleEN:       nullable(in.TitleEN),
		DescriptionEN: nullable(in.DescriptionEN),
		VideoPath:     videoKey,
		ThumbnailPath: thumbKey,
		IsPublished:   in.IsPublished,
		SortOrder:     in.SortOrder,
	}
	if err := s.videos.Insert(ctx, rec); err != nil {
		sub.to(StepIdle)
		metrics.RecordWorkflow("video_create", "error")
		return nil, err
	}
	sub.to(StepIdle)

	metrics.RecordWorkflow("video_create", "success")
	s.log.Info().Str("video_id", id).Msg("video created")
	return rec, nil
}

// UpdateVideo runs the edit workflow. Either asset may be replaced or left
// untouched. Replacement uploads the new object first and removes the old
// one after, so a removal failure never leaves the record pointing at a
// missing object; the stale object is reported through a partial-failure
// error alongside the updated record, never retried.
func (s *Service) UpdateVideo(ctx context.Context, id string, in VideoInput, video, thumbnail *Asset, observe Observer) (*content.Video, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"title is required", nil)
	}

	existing, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uploadedAt := s.now()
	sub := newSubmission(observe)
	swapped := false
	var orphans []string

	nextThumb := existing.ThumbnailPath
	nextVideo := existing.VideoPath

	sub.to(StepUploadingThumbnail)
	if thumbnail != nil {
		key := ObjectKey("thumbnails", id, uploadedAt, thumbnail.Filename)
		if err := s.upload(ctx, "thumbnail", key, thumbnail); err != nil {
			sub.to(StepIdle)
			metrics.RecordWorkflow("video_update", "error")
			return nil, err
		}
		s.removeOld(ctx, existing.ThumbnailPath, &orphans)
		nextThumb = key
		swapped = true
	}

	sub.to(StepUploadingPrimary)
	if video != nil {
		key := ObjectKey("videos", id, uploadedAt, video.Filename)
		if err := s.upload(ctx, "video", key, video); err != nil {
			sub.to(StepIdle)
			metrics.RecordWorkflow("video_update", "error")
			return nil, err
		}
		s.removeOld(ctx, existing.VideoPath, &orphans)
		nextVideo = key
		swapped = true
	}

	sub.to(StepWritingRecord)
	fields := map[string]any{
		"title":          in.Title,
		"description":    nullable(in.Description),
		"title_en":       nullable(in.TitleEN),
		"description_en": nullable(in.DescriptionEN),
		"video_path":     nextVideo,
		"thumbnail_path": nextThumb,
		"is_published":   in.IsPublished,
		"sort_order":     in.SortOrder,
	}
	if err := s.videos.Update(ctx, id, fields); err != nil {
		sub.to(StepIdle)
		metrics.RecordWorkflow("video_update", "error")
		if swapped {
			// Storage already holds the new objects; the row still points at
			// the old ones. Surfaced distinctly, not rolled back.
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypePartial,
				"files were replaced in storage but the record update failed", err)
		}
		return nil, err
	}
	sub.to(StepIdle)

	updated, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.RecordWorkflow("video_update", "success")
	if len(orphans) > 0 {
		return updated, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypePartial,
			fmt.Sprintf("record updated but previous files were not removed: %s", strings.Join(orphans, ", ")), nil)
	}
	return updated, nil
}

// DeleteVideo removes the row first, then the stored objects. The caller
// must confirm with the record's exact title. A row-delete failure aborts
// before any storage call; a storage failure after a successful row delete
// is the distinguished "row gone, files remain" partial outcome.
func (s *Service) DeleteVideo(ctx context.Context, id, confirmTitle string) error {
	existing, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if confirmTitle != existing.Title {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("confirmation title does not match %q", existing.Title), nil)
	}

	if err := s.videos.Delete(ctx, id); err != nil {
		metrics.RecordWorkflow("video_delete", "error")
		return err
	}

	keys := nonEmpty(existing.VideoPath, existing.ThumbnailPath)
	if len(keys) > 0 {
		if err := s.store.Remove(ctx, keys); err != nil {
			metrics.RecordWorkflow("video_delete", "partial")
			return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypePartial,
				"record deleted but storage objects remain", err)
		}
	}

	metrics.RecordWorkflow("video_delete", "success")
	s.log.Info().Str("video_id", id).Msg("video deleted")
	return nil
}

// TogglePublishVideo flips the publish flag then re-reads the whole list
// from the repository, so the caller always renders backend truth rather
// than a locally assumed flag.
func (s *Service) TogglePublishVideo(ctx context.Context, id string) ([]content.Video, error) {
	existing, err := s.videos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.videos.Update(ctx, id, map[string]any{"is_published": !existing.IsPublished}); err != nil {
		return nil, err
	}
	return s.videos.List(ctx, false)
}

// CreateArticle mirrors CreateVideo with a single image asset: the image is
// uploaded in the thumbnail phase and the primary-asset phase is skipped.
func (s *Service) CreateArticle(ctx context.Context, in ArticleInput, image *Asset, observe Observer) (*content.Article, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"title is required", nil)
	}
	if image == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"an image file is required to create", nil)
	}

	id := recordid.New()
	sub := newSubmission(observe)

	sub.to(StepUploadingThumbnail)
	imageKey := ObjectKey("images", id, s.now(), image.Filename)
	if err := s.upload(ctx, "image", imageKey, image); err != nil {
		sub.to(StepIdle)
		metrics.RecordWorkflow("article_create", "error")
		return nil, err
	}

	sub.to(StepWritingRecord)
	rec := &content.Article{
		ID:          id,
		Title:       in.Title,
		Content:     nullable(in.Content),
		TitleEN:     nullable(in.TitleEN),
		ContentEN:   nullable(in.ContentEN),
		ImagePath:   imageKey,
		IsPublished: in.IsPublished,
		SortOrder:   in.SortOrder,
	}
	if err := s.articles.Insert(ctx, rec); err != nil {
		sub.to(StepIdle)
		metrics.RecordWorkflow("article_create", "error")
		return nil, err
	}
	sub.to(StepIdle)

	metrics.RecordWorkflow("article_create", "success")
	s.log.Info().Str("article_id", id).Msg("article created")
	return rec, nil
}

// UpdateArticle mirrors UpdateVideo for the single image asset.
func (s *Service) UpdateArticle(ctx context.Context, id string, in ArticleInput, image *Asset, observe Observer) (*content.Article, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"title is required", nil)
	}

	existing, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sub := newSubmission(observe)
	swapped := false
	var orphans []string
	nextImage := existing.ImagePath

	sub.to(StepUploadingThumbnail)
	if image != nil {
		key := ObjectKey("images", id, s.now(), image.Filename)
		if err := s.upload(ctx, "image", key, image); err != nil {
			sub.to(StepIdle)
			metrics.RecordWorkflow("article_update", "error")
			return nil, err
		}
		s.removeOld(ctx, existing.ImagePath, &orphans)
		nextImage = key
		swapped = true
	}

	sub.to(StepWritingRecord)
	fields := map[string]any{
		"title":        in.Title,
		"content":      nullable(in.Content),
		"title_en":     nullable(in.TitleEN),
		"content_en":   nullable(in.ContentEN),
		"image_path":   nextImage,
		"is_published": in.IsPublished,
		"sort_order":   in.SortOrder,
	}
	if err := s.articles.Update(ctx, id, fields); err != nil {
		sub.to(StepIdle)
		metrics.RecordWorkflow("article_update", "error")
		if swapped {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypePartial,
				"files were replaced in storage but the record update failed", err)
		}
		return nil, err
	}
	sub.to(StepIdle)

	updated, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.RecordWorkflow("article_update", "success")
	if len(orphans) > 0 {
		return updated, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypePartial,
			fmt.Sprintf("record updated but previous files were not removed: %s", strings.Join(orphans, ", ")), nil)
	}
	return updated, nil
}

// DeleteArticle mirrors DeleteVideo.
func (s *Service) DeleteArticle(ctx context.Context, id, confirmTitle string) error {
	existing, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if confirmTitle != existing.Title {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("confirmation title does not match %q", existing.Title), nil)
	}

	if err := s.articles.Delete(ctx, id); err != nil {
		metrics.RecordWorkflow("article_delete", "error")
		return err
	}

	keys := nonEmpty(existing.ImagePath)
	if len(keys) > 0 {
		if err := s.store.Remove(ctx, keys); err != nil {
			metrics.RecordWorkflow("article_delete", "partial")
			return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypePartial,
				"record deleted but storage objects remain", err)
		}
	}

	metrics.RecordWorkflow("article_delete", "success")
	s.log.Info().Str("article_id", id).Msg("article deleted")
	return nil
}

// TogglePublishArticle mirrors TogglePublishVideo.
func (s *Service) TogglePublishArticle(ctx context.Context, id string) ([]content.Article, error) {
	existing, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.articles.Update(ctx, id, map[string]any{"is_published": !existing.IsPublished}); err != nil {
		return nil, err
	}
	return s.articles.List(ctx, false)
}

func (s *Service) upload(ctx context.Context, category, key string, a *Asset) error {
	if err := s.store.Upload(ctx, key, a.Body, a.Size, a.ContentType); err != nil {
		metrics.RecordUpload(category, "error", a.Size)
		return err
	}
	metrics.RecordUpload(category, "success", a.Size)
	return nil
}

// removeOld deletes a replaced object. Failures are non-fatal: the record
// already points at the new key, so a leftover object is only an orphan.
func (s *Service) removeOld(ctx context.Context, key string, orphans *[]string) {
	if key == "" {
		return
	}
	if err := s.store.Remove(ctx, []string{key}); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("previous object not removed")
		*orphans = append(*orphans, key)
	}
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
