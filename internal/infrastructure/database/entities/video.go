package entities

import "time"

// Video represents a persisted video record. Asset columns hold relative
// storage keys, never full URLs.
type Video struct {
	ID            string  `gorm:"type:varchar(40);primaryKey"`
	Title         string  `gorm:"type:varchar(255);not null"`
	Description   *string `gorm:"type:text"`
	TitleEN       *string `gorm:"column:title_en;type:varchar(255)"`
	DescriptionEN *string `gorm:"column:description_en;type:text"`
	VideoPath     string  `gorm:"type:varchar(255);not null"`
	ThumbnailPath string  `gorm:"type:varchar(255);not null"`
	IsPublished   bool    `gorm:"not null;default:false"`
	SortOrder     int     `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Video) TableName() string {
	return "videos"
}
