package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint   `gorm:"index;not null" json:"user_id"`
	Title     string `gorm:"size:200;not null" json:"title"`
	Message   string `gorm:"type:text" json:"message"`
	Type      string `gorm:"size:50" json:"type"`
	RelatedID *uint  `json:"related_id"`
	Priority  string `gorm:"size:20" json:"priority"`
	IsRead    bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
