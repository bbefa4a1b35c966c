package content

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	"github.com/Tomyshh/frank-melloul-website/internal/infrastructure/database/entities"
	"github.com/Tomyshh/frank-melloul-website/internal/utils/platformerrors"
)

// VideoRepository handles video record persistence.
type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) List(ctx context.Context, publishedOnly bool) ([]domain.Video, error) {
	query := r.db.WithContext(ctx).Order("sort_order DESC").Order("created_at DESC")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	var rows []entities.Video
	if err := query.Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list videos",
			err,
		)
	}
	out := make([]domain.Video, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapVideo(row))
	}
	return out, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	var row entities.Video
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"video not found",
				err,
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to get video by id",
			err,
		)
	}
	obj := mapVideo(row)
	return &obj, nil
}

func (r *VideoRepository) Insert(ctx context.Context, video *domain.Video) error {
	row := entities.Video{
		ID:            video.ID,
		Title:         video.Title,
		Description:   video.Description,
		TitleEN:       video.TitleEN,
		DescriptionEN: video.DescriptionEN,
		VideoPath:     video.VideoPath,
		ThumbnailPath: video.ThumbnailPath,
		IsPublished:   video.IsPublished,
		SortOrder:     video.SortOrder,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create video",
			err,
		)
	}
	video.CreatedAt = row.CreatedAt
	video.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *VideoRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	result := r.db.WithContext(ctx).Model(&entities.Video{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update video",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"video not found",
			nil,
		)
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Video{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete video",
			result.Error,
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			"video not found",
			nil,
		)
	}
	return nil
}

func mapVideo(row entities.Video) domain.Video {
	return domain.Video{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		TitleEN:       row.TitleEN,
		DescriptionEN: row.DescriptionEN,
		VideoPath:     row.VideoPath,
		ThumbnailPath: row.ThumbnailPath,
		IsPublished:   row.IsPublished,
		SortOrder:     row.SortOrder,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
