package content

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/locale"
)

// VideoView is a locale-resolved video ready for rendering.
type VideoView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// ArticleView is a locale-resolved article ready for rendering.
type ArticleView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// Listing is the result of the public two-collection fetch. The collections
// fail independently: a failed one carries its error and an empty slice
// while the sibling still renders.
type Listing struct {
	Videos   []VideoView
	Articles []ArticleView

	VideosErr   error
	ArticlesErr error
}

// Service is the public content fetch layer.
type Service struct {
	videos   VideoRepository
	articles ArticleRepository
	store    ObjectStore
	log      zerolog.Logger
}

func NewService(videos VideoRepository, articles ArticleRepository, store ObjectStore, log zerolog.Logger) *Service {
	return &Service{
		videos:   videos,
		articles: articles,
		store:    store,
		log:      log.With().Str("component", "content-service").Logger(),
	}
}

// ListPublished fetches published videos and articles concurrently and maps
// them into locale-resolved view models. The two queries share no state and
// no ordering dependency; each failure is logged, recorded on the Listing,
// and degrades its own collection to an empty list.
func (s *Service) ListPublished(ctx context.Context, loc locale.Locale) Listing {
	var (
		wg      sync.WaitGroup
		listing Listing
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rows, err := s.videos.List(ctx, true)
		if err != nil {
			s.log.Error().Err(err).Msg("list published videos")
			listing.Videos = []VideoView{}
			listing.VideosErr = err
			return
		}
		listing.Videos = s.videoViews(rows, loc)
	}()
	go func() {
		defer wg.Done()
		rows, err := s.articles.List(ctx, true)
		if err != nil {
			s.log.Error().Err(err).Msg("list published articles")
			listing.Articles = []ArticleView{}
			listing.ArticlesErr = err
			return
		}
		listing.Articles = s.articleViews(rows, loc)
	}()
	wg.Wait()

	return listing
}

// PublishedVideos fetches only the video collection.
func (s *Service) PublishedVideos(ctx context.Context, loc locale.Locale) ([]VideoView, error) {
	rows, err := s.videos.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return s.videoViews(rows, loc), nil
}

// PublishedArticles fetches only the article collection.
func (s *Service) PublishedArticles(ctx context.Context, loc locale.Locale) ([]ArticleView, error) {
	rows, err := s.articles.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return s.articleViews(rows, loc), nil
}

func (s *Service) videoViews(rows []Video, loc locale.Locale) []VideoView {
	views := make([]VideoView, 0, len(rows))
	for _, v := range rows {
		description := ""
		if v.Description != nil {
			description = *v.Description
		}
		views = append(views, VideoView{
			ID:           v.ID,
			Title:        locale.Field(loc, v.Title, v.TitleEN),
			Description:  locale.Field(loc, description, v.DescriptionEN),
			VideoURL:     s.store.PublicURL(v.VideoPath),
			ThumbnailURL: s.store.PublicURL(v.ThumbnailPath),
			SortOrder:    v.SortOrder,
			CreatedAt:    v.CreatedAt,
		})
	}
	return views
}

func (s *Service) articleViews(rows []Article, loc locale.Locale) []ArticleView {
	views := make([]ArticleView, 0, len(rows))
	for _, a := range rows {
		body := ""
		if a.Content != nil {
			body = *a.Content
		}
		views = append(views, ArticleView{
			ID:        a.ID,
			Title:     locale.Field(loc, a.Title, a.TitleEN),
			Content:   locale.Field(loc, body, a.ContentEN),
			ImageURL:  s.store.PublicURL(a.ImagePath),
			SortOrder: a.SortOrder,
			CreatedAt: a.CreatedAt,
		})
	}
	return views
}
