package content

import (
	"context"
	"io"
	"time"
)

// Video is a video record. Path fields hold relative storage keys.
type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	TitleEN       *string   `json:"title_en"`
	DescriptionEN *string   `json:"description_en"`
	VideoPath     string    `json:"video_path"`
	ThumbnailPath string    `json:"thumbnail_path"`
	IsPublished   bool      `json:"is_published"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Article is an article record with a single image asset.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     *string   `json:"content"`
	TitleEN     *string   `json:"title_en"`
	ContentEN   *string   `json:"content_en"`
	ImagePath   string    `json:"image_path"`
	IsPublished bool      `json:"is_published"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VideoRepository defines persistence operations over video records.
// List results are ordered by sort_order descending, then created_at
// descending.
type VideoRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]Video, error)
	GetByID(ctx context.Context, id string) (*Video, error)
	Insert(ctx context.Context, v *Video) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// ArticleRepository defines persistence operations over article records.
type ArticleRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]Article, error)
	GetByID(ctx context.Context, id string) (*Article, error)
	Insert(ctx context.Context, a *Article) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

// ObjectStore is the object-storage capability shared by the public fetch
// layer and the admin workflows. PublicURL is a pure computation over
// (bucket, key, endpoint); it returns "" when storage is unconfigured, which
// callers treat as "no media", never as an error.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, keys []string) error
	PublicURL(key string) string
}
