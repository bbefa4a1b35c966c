package content

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
)

// InMemoryVideoRepository backs the service when no database is configured.
// Rows live for the process lifetime only.
type InMemoryVideoRepository struct {
	mu   sync.RWMutex
	rows map[string]domain.Video
}

func NewInMemoryVideoRepository() *InMemoryVideoRepository {
	return &InMemoryVideoRepository{rows: make(map[string]domain.Video)}
}

func (r *InMemoryVideoRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Video, 0, len(r.rows))
	for _, row := range r.rows {
		if publishedOnly && !row.IsPublished {
			continue
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder > out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryVideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			"video not found", nil)
	}
	return &row, nil
}

func (r *InMemoryVideoRepository) Insert(ctx context.Context, video *domain.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rows[video.ID]; exists {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict,
			"video id already exists", nil)
	}
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now
	r.rows[video.ID] = *video
	return nil
}

func (r *InMemoryVideoRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			"video not found", nil)
	}
	for key, value := range fields {
		switch key {
		case "title":
			row.Title = value.(string)
		case "description":
			row.Description = asStringPtr(value)
		case "title_en":
			row.TitleEN = asStringPtr(value)
		case "description_en":
			row.DescriptionEN = asStringPtr(value)
		case "video_path":
			row.VideoPath = value.(string)
		case "thumbnail_path":
			row.ThumbnailPath = value.(string)
		case "is_published":
			row.IsPublished = value.(bool)
		case "sort_order":
			row.SortOrder = value.(int)
		}
	}
	row.UpdatedAt = time.Now()
	r.rows[id] = row
	return nil
}

func (r *InMemoryVideoRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			"video not found", nil)
	}
	delete(r.rows, id)
	return nil
}

// InMemoryArticleRepository mirrors the video variant for articles.
type InMemoryArticleRepository struct {
	mu   sync.RWMutex
	rows map[string]domain.Article
}

func NewInMemoryArticleRepository() *InMemoryArticleRepository {
	return &InMemoryArticleRepository{rows: make(map[string]domain.Article)}
}

func (r *InMemoryArticleRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Article, 0, len(r.rows))
	for _, row := range r.rows {
		if publishedOnly && !row.IsPublished {
			continue
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder > out[j].SortOrder
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			"article not found", nil)
	}
	return &row, nil
}

func (r *InMemoryArticleRepository) Insert(ctx context.Context, article *domain.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rows[article.ID]; exists {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict,
			"article id already exists", nil)
	}
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	r.rows[article.ID] = *article
	return nil
}

func (r *InMemoryArticleRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			"article not found", nil)
	}
	for key, value := range fields {
		switch key {
		case "title":
			row.Title = value.(string)
		case "content":
			row.Content = asStringPtr(value)
		case "title_en":
			row.TitleEN = asStringPtr(value)
		case "content_en":
			row.ContentEN = asStringPtr(value)
		case "image_path":
			row.ImagePath = value.(string)
		case "is_published":
			row.IsPublished = value.(bool)
		case "sort_order":
			row.SortOrder = value.(int)
		}
	}
	row.UpdatedAt = time.Now()
	r.rows[id] = row
	return nil
}

func (r *InMemoryArticleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound,
			"article not found", nil)
	}
	delete(r.rows, id)
	return nil
}

func asStringPtr(value any) *string {
	switch v := value.(type) {
	case nil:
		return nil
	case *string:
		return v
	case string:
		return &v
	default:
		return nil
	}
}
