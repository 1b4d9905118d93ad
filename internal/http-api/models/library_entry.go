package models

import "time"

// Reading statuses derived from (currentPage, pageCount). The stored value is
// a cached projection; it is never taken from client input.
const (
	StatusUnread   = "Unread"
	StatusReading  = "Reading"
	StatusFinished = "Finished"
)

// LibraryEntry is a user-owned copy of a book, keyed by (user_id, book_id).
// Entries copied from the catalog reuse the catalog book id; manually added
// entries get a fresh one.
type LibraryEntry struct {
	UserID           string     `gorm:"type:uuid;primaryKey" json:"-"`
	BookID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string     `gorm:"not null" json:"title"`
	Author           string     `json:"author"`
	Genre            string     `json:"genre"`
	PageCount        int        `json:"pageCount"`
	Published        int        `json:"published"`
	CurrentPage      int        `gorm:"default:0" json:"currentPage"`
	Status           string     `gorm:"default:'Unread'" json:"status"`
	AddedAt          string     `json:"addedAt,omitempty"`
	ImageURL         string     `gorm:"column:image_url" json:"imageUrl,omitempty"`
	TargetFinishDate *time.Time `json:"targetFinishDate,omitempty"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (LibraryEntry) TableName() string {
	return "library_entries"
}
