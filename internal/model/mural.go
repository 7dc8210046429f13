package model

import "time"

type MuralItem struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Subtitle    string    `gorm:"size:255;not null" json:"subtitle"`
	// ISO yyyy-mm-dd; lexical order matches chronological order
	PublishDate string    `gorm:"size:10;not null;index" json:"publish_date"`
	Link        *string   `gorm:"size:500" json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (MuralItem) TableName() string {
	return "mural"
}
