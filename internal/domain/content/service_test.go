package content_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	"github.com/Tomyshh/frank-melloul-website/internal/domain/locale"
)

type stubVideoRepo struct {
	rows []content.Video
	err  error
}

func (r *stubVideoRepo) List(ctx context.Context, publishedOnly bool) ([]content.Video, error) {
	return r.rows, r.err
}
func (r *stubVideoRepo) GetByID(ctx context.Context, id string) (*content.Video, error) {
	return nil, errors.New("not implemented")
}
func (r *stubVideoRepo) Insert(ctx context.Context, video *content.Video) error  { return nil }
func (r *stubVideoRepo) Update(ctx context.Context, id string, f map[string]any) error {
	return nil
}
func (r *stubVideoRepo) Delete(ctx context.Context, id string) error { return nil }

type stubArticleRepo struct {
	rows []content.Article
	err  error
}

func (r *stubArticleRepo) List(ctx context.Context, publishedOnly bool) ([]content.Article, error) {
	return r.rows, r.err
}
func (r *stubArticleRepo) GetByID(ctx context.Context, id string) (*content.Article, error) {
	return nil, errors.New("not implemented")
}
func (r *stubArticleRepo) Insert(ctx context.Context, article *content.Article) error { return nil }
func (r *stubArticleRepo) Update(ctx context.Context, id string, f map[string]any) error {
	return nil
}
func (r *stubArticleRepo) Delete(ctx context.Context, id string) error { return nil }

type urlStore struct {
	disabled bool
}

func (s urlStore) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return nil
}
func (s urlStore) Remove(ctx context.Context, keys []string) error { return nil }
func (s urlStore) PublicURL(key string) string {
	if s.disabled || key == "" {
		return ""
	}
	return "https://media.test/" + key
}

func ptr(s string) *string { return &s }

func TestListPublished_LocaleResolution(t *testing.T) {
	videos := &stubVideoRepo{rows: []content.Video{{
		ID:            "mp_v1",
		Title:         "Entretien",
		Description:   ptr("Description FR"),
		TitleEN:       ptr("Interview"),
		VideoPath:     "videos/mp_v1/1-a.mp4",
		ThumbnailPath: "thumbnails/mp_v1/1-a.jpg",
		CreatedAt:     time.Now(),
	}}}
	articles := &stubArticleRepo{rows: []content.Article{{
		ID:        "mp_a1",
		Title:     "Tribune",
		Content:   ptr("Texte"),
		ImagePath: "images/mp_a1/1-a.png",
	}}}
	service := content.NewService(videos, articles, urlStore{}, zerolog.Nop())

	en := service.ListPublished(context.Background(), locale.English)
	require.Len(t, en.Videos, 1)
	assert.Equal(t, "Interview", en.Videos[0].Title, "english override applies")
	assert.Equal(t, "Description FR", en.Videos[0].Description, "missing override falls back to primary text")
	assert.Equal(t, "https://media.test/videos/mp_v1/1-a.mp4", en.Videos[0].VideoURL)

	fr := service.ListPublished(context.Background(), locale.French)
	require.Len(t, fr.Videos, 1)
	assert.Equal(t, "Entretien", fr.Videos[0].Title)
	require.Len(t, fr.Articles, 1)
	assert.Equal(t, "Tribune", fr.Articles[0].Title)
}

func TestListPublished_CollectionsFailIndependently(t *testing.T) {
	videos := &stubVideoRepo{err: errors.New("videos table gone")}
	articles := &stubArticleRepo{rows: []content.Article{{ID: "mp_a1", Title: "Tribune"}}}
	service := content.NewService(videos, articles, urlStore{}, zerolog.Nop())

	listing := service.ListPublished(context.Background(), locale.English)

	require.Error(t, listing.VideosErr)
	assert.NotNil(t, listing.Videos)
	assert.Empty(t, listing.Videos, "failed collection degrades to an empty list")

	require.NoError(t, listing.ArticlesErr)
	assert.Len(t, listing.Articles, 1, "sibling collection still renders")
}

func TestListPublished_DisabledStorageYieldsEmptyURLs(t *testing.T) {
	videos := &stubVideoRepo{rows: []content.Video{{ID: "mp_v1", Title: "A", VideoPath: "videos/a", ThumbnailPath: "thumbnails/b"}}}
	service := content.NewService(videos, &stubArticleRepo{}, urlStore{disabled: true}, zerolog.Nop())

	listing := service.ListPublished(context.Background(), locale.English)
	require.Len(t, listing.Videos, 1)
	assert.Empty(t, listing.Videos[0].VideoURL)
	assert.Empty(t, listing.Videos[0].ThumbnailURL)
}

func TestPublishedVideos_PropagatesError(t *testing.T) {
	service := content.NewService(&stubVideoRepo{err: errors.New("boom")}, &stubArticleRepo{}, urlStore{}, zerolog.Nop())
	_, err := service.PublishedVideos(context.Background(), locale.English)
	require.Error(t, err)
}
