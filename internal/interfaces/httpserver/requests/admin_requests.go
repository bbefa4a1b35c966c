package requests

import (
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/admin"
)

// VideoForm is the multipart form a video submission carries. Files travel
// in the "video" and "thumbnail" parts.
type VideoForm struct {
	Title         string `form:"title"`
	Description   string `form:"description"`
	TitleEN       string `form:"title_en"`
	DescriptionEN string `form:"description_en"`
	IsPublished   bool   `form:"is_published"`
	SortOrder     int    `form:"sort_order"`
}

func (f *VideoForm) ToDomain() admin.VideoInput {
	return admin.VideoInput{
		Title:         f.Title,
		Description:   f.Description,
		TitleEN:       f.TitleEN,
		DescriptionEN: f.DescriptionEN,
		IsPublished:   f.IsPublished,
		SortOrder:     f.SortOrder,
	}
}

// ArticleForm is the multipart form an article submission carries. The
// image travels in the "image" part.
type ArticleForm struct {
	Title       string `form:"title"`
	Content     string `form:"content"`
	TitleEN     string `form:"title_en"`
	ContentEN   string `form:"content_en"`
	IsPublished bool   `form:"is_published"`
	SortOrder   int    `form:"sort_order"`
}

func (f *ArticleForm) ToDomain() admin.ArticleInput {
	return admin.ArticleInput{
		Title:       f.Title,
		Content:     f.Content,
		TitleEN:     f.TitleEN,
		ContentEN:   f.ContentEN,
		IsPublished: f.IsPublished,
		SortOrder:   f.SortOrder,
	}
}

// LoginRequest represents admin credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// DeleteRequest carries the confirmation title a destructive delete needs.
type DeleteRequest struct {
	ConfirmTitle string `json:"confirm_title" form:"confirm_title"`
}

// OpenAsset turns a multipart file header into a domain asset. The caller
// owns the returned closer. The declared content type is trusted when
// present; otherwise it is sniffed from the leading bytes.
func OpenAsset(header *multipart.FileHeader, maxBytes int64) (*admin.Asset, func(), error) {
	if header.Size > maxBytes {
		return nil, nil, fmt.Errorf("file %s exceeds the %d byte limit", header.Filename, maxBytes)
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open uploaded file: %w", err)
	}
	closer := func() { _ = file.Close() }

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		detected, err := mimetype.DetectReader(file)
		if err != nil {
			closer()
			return nil, nil, fmt.Errorf("detect content type: %w", err)
		}
		if _, err := file.Seek(0, 0); err != nil {
			closer()
			return nil, nil, fmt.Errorf("rewind uploaded file: %w", err)
		}
		contentType = detected.String()
	}

	return &admin.Asset{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	}, closer, nil
}
