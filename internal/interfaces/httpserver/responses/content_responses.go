package responses

import (
	"time"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/admin"
	"github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	"github.com/Tomyshh/frank-melloul-website/internal/domain/locale"
)

// PublicContentResponse is the payload behind the public communication
// page: both published collections plus per-collection degradation notes.
type PublicContentResponse struct {
	Locale   string                `json:"locale"`
	Videos   []content.VideoView   `json:"videos"`
	Articles []content.ArticleView `json:"articles"`
	Errors   *CollectionErrors     `json:"errors,omitempty"`
}

// CollectionErrors names which collections failed to load.
type CollectionErrors struct {
	Videos   string `json:"videos,omitempty"`
	Articles string `json:"articles,omitempty"`
}

func NewPublicContentResponse(loc locale.Locale, listing content.Listing) PublicContentResponse {
	resp := PublicContentResponse{
		Locale:   string(loc),
		Videos:   listing.Videos,
		Articles: listing.Articles,
	}
	if listing.VideosErr != nil || listing.ArticlesErr != nil {
		resp.Errors = &CollectionErrors{}
		if listing.VideosErr != nil {
			resp.Errors.Videos = "videos are temporarily unavailable"
		}
		if listing.ArticlesErr != nil {
			resp.Errors.Articles = "articles are temporarily unavailable"
		}
	}
	return resp
}

// TranslationsResponse carries the whole interface catalog for a locale.
type TranslationsResponse struct {
	Locale       string              `json:"locale"`
	Translations locale.Translations `json:"translations"`
}

// AdminVideoResponse is the admin view of a video row: raw row fields plus
// resolved asset URLs, drafts included.
type AdminVideoResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	TitleEN       *string   `json:"title_en"`
	DescriptionEN *string   `json:"description_en"`
	VideoPath     string    `json:"video_path"`
	ThumbnailPath string    `json:"thumbnail_path"`
	VideoURL      string    `json:"video_url"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	IsPublished   bool      `json:"is_published"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AdminArticleResponse mirrors AdminVideoResponse for articles.
type AdminArticleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     *string   `json:"content"`
	TitleEN     *string   `json:"title_en"`
	ContentEN   *string   `json:"content_en"`
	ImagePath   string    `json:"image_path"`
	ImageURL    string    `json:"image_url"`
	IsPublished bool      `json:"is_published"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdminVideoListResponse wraps an admin list. Warning is set when the
// operation succeeded with a reported side issue.
type AdminVideoListResponse struct {
	Videos  []AdminVideoResponse `json:"videos"`
	Warning string               `json:"warning,omitempty"`
}

type AdminArticleListResponse struct {
	Articles []AdminArticleResponse `json:"articles"`
	Warning  string                 `json:"warning,omitempty"`
}

// AdminVideoRecordResponse wraps a single record write result. Steps
// traces the submission phases the workflow went through.
type AdminVideoRecordResponse struct {
	Video   AdminVideoResponse `json:"video"`
	Steps   []StepEvent        `json:"steps,omitempty"`
	Warning string             `json:"warning,omitempty"`
}

type AdminArticleRecordResponse struct {
	Article AdminArticleResponse `json:"article"`
	Steps   []StepEvent          `json:"steps,omitempty"`
	Warning string               `json:"warning,omitempty"`
}

// DeleteResponse reports a delete outcome, including the partial case
// where the record is gone but storage objects remain.
type DeleteResponse struct {
	Deleted bool   `json:"deleted"`
	Warning string `json:"warning,omitempty"`
}

// StepEvent is streamed while a submission progresses.
type StepEvent struct {
	Step string `json:"step"`
}

// PublicURLResolver turns storage keys into browser URLs.
type PublicURLResolver interface {
	PublicURL(key string) string
}

func NewAdminVideoResponse(v content.Video, urls PublicURLResolver) AdminVideoResponse {
	return AdminVideoResponse{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		TitleEN:       v.TitleEN,
		DescriptionEN: v.DescriptionEN,
		VideoPath:     v.VideoPath,
		ThumbnailPath: v.ThumbnailPath,
		VideoURL:      urls.PublicURL(v.VideoPath),
		ThumbnailURL:  urls.PublicURL(v.ThumbnailPath),
		IsPublished:   v.IsPublished,
		SortOrder:     v.SortOrder,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func NewAdminVideoListResponse(rows []content.Video, urls PublicURLResolver) AdminVideoListResponse {
	out := AdminVideoListResponse{Videos: make([]AdminVideoResponse, 0, len(rows))}
	for _, v := range rows {
		out.Videos = append(out.Videos, NewAdminVideoResponse(v, urls))
	}
	return out
}

func NewAdminArticleResponse(a content.Article, urls PublicURLResolver) AdminArticleResponse {
	return AdminArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		TitleEN:     a.TitleEN,
		ContentEN:   a.ContentEN,
		ImagePath:   a.ImagePath,
		ImageURL:    urls.PublicURL(a.ImagePath),
		IsPublished: a.IsPublished,
		SortOrder:   a.SortOrder,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewAdminArticleListResponse(rows []content.Article, urls PublicURLResolver) AdminArticleListResponse {
	out := AdminArticleListResponse{Articles: make([]AdminArticleResponse, 0, len(rows))}
	for _, a := range rows {
		out.Articles = append(out.Articles, NewAdminArticleResponse(a, urls))
	}
	return out
}

// NewStepEvent maps a workflow step for the submission progress stream.
func NewStepEvent(step admin.Step) StepEvent {
	return StepEvent{Step: string(step)}
}
