package dto

// AddBookRequest: payload for an admin catalog addition
type AddBookRequest struct {
	Title     string `json:"title" binding:"required"`
	Author    string `json:"author" binding:"required"`
	Genre     string `json:"genre" binding:"required"`
	PageCount int    `json:"pageCount" binding:"required"`
	Published int    `json:"published" binding:"required"`
}

// AddBookData: data payload after a catalog addition
type AddBookData struct {
	BookID string `json:"bookId"`
}

// AddToLibraryRequest: payload to copy a catalog book into the user's library
type AddToLibraryRequest struct {
	BookID string `json:"bookId" binding:"required"`
}

// UpdateProgressRequest: payload for a reading-progress update.
// CurrentPage is a pointer so a missing field is distinguishable from 0.
type UpdateProgressRequest struct {
	CurrentPage *int `json:"currentPage" binding:"required"`
}

// ManualAddData: data payload after a manual library addition
type ManualAddData struct {
	BookID   string `json:"bookId"`
	ImageURL string `json:"imageUrl"`
}
