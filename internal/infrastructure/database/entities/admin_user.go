package entities

import "time"

// AdminUser is an operator account allowed into the admin surface.
type AdminUser struct {
	ID           string    `gorm:"type:varchar(40);primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// AdminSession is a revocable login session backing an issued token.
type AdminSession struct {
	ID        string     `gorm:"type:varchar(40);primaryKey"`
	UserID    string     `gorm:"type:varchar(40);index;not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time  `gorm:"not null"`
	RevokedAt *time.Time `gorm:"index"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
}

func (AdminSession) TableName() string {
	return "admin_sessions"
}
