package entities

import "time"

// Article represents a persisted article record with a single image asset.
type Article struct {
	ID        string  `gorm:"type:varchar(40);primaryKey"`
	Title     string  `gorm:"type:varchar(255);not null"`
	Content   *string `gorm:"type:text"`
	TitleEN   *string `gorm:"column:title_en;type:varchar(255)"`
	ContentEN *string `gorm:"column:content_en;type:text"`
	ImagePath string  `gorm:"type:varchar(255);not null"`
	IsPublished bool  `gorm:"not null;default:false"`
	SortOrder   int   `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Article) TableName() string {
	return "articles"
}
