package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Book is a catalog record curated by administrators. Users copy it into
// their own library by value; later catalog edits never propagate.
type Book struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	Title     string     `json:"title" gorm:"uniqueIndex;not null"`
	Author    string     `json:"author" gorm:"not null"`
	Genre     string     `json:"genre" gorm:"not null"`
	PageCount int        `json:"pageCount" gorm:"not null"`
	Published int        `json:"published" gorm:"not null"`
	CreatedAt *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
}

func (book *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	return
}

func (Book) TableName() string {
	return "books"
}
