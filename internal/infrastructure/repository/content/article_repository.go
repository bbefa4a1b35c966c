package content

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	"github.com/Tomyshh/frank-melloul-website/internal/infrastructure/database/entities"
	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
)

// ArticleRepository handles article record persistence.
type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Article, error) {
	query := r.db.WithContext(ctx).Order("sort_order DESC").Order("created_at DESC")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	var rows []entities.Article
	if err := query.Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list articles",
			err,
		)
	}
	out := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapArticle(row))
	}
	return out, nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var row entities.Article
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"article not found",
				err,
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get article by id",
			err,
		)
	}
	obj := mapArticle(row)
	return &obj, nil
}

func (r *ArticleRepository) Insert(ctx context.Context, article *domain.Article) error {
	row := entities.Article{
		ID:          article.ID,
		Title:       article.Title,
		Content:     article.Content,
		TitleEN:     article.TitleEN,
		ContentEN:   article.ContentEN,
		ImagePath:   article.ImagePath,
		IsPublished: article.IsPublished,
		SortOrder:   article.SortOrder,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create article",
			err,
		)
	}
	article.CreatedAt = row.CreatedAt
	article.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *ArticleRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&entities.Article{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update article",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"article not found",
			nil,
		)
	}
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Article{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete article",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"article not found",
			nil,
		)
	}
	return nil
}

func mapArticle(row entities.Article) domain.Article {
	return domain.Article{
		ID:          row.ID,
		Title:       row.Title,
		Content:     row.Content,
		TitleEN:     row.TitleEN,
		ContentEN:   row.ContentEN,
		ImagePath:   row.ImagePath,
		IsPublished: row.IsPublished,
		SortOrder:   row.SortOrder,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
