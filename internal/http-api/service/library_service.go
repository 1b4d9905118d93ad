package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"bookshelf/internal/blobstore"
	"bookshelf/internal/http-api/models"
	"bookshelf/internal/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound    = errors.New("book not found in your library")
	ErrAlreadyInLibrary = errors.New("book already in your library")
	ErrNotNumeric       = errors.New("pageCount and published must be numbers")
	ErrInvalidDate      = errors.New("target finish date is not a valid date")
	ErrDateInPast       = errors.New("target finish date cannot be in the past")
	ErrNegativePage     = errors.New("current page must be >= 0")
)

// ImageUpload is a cover image taken from a multipart request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ManualAddInput carries the fields of a manually added library entry.
// PageCount and Published arrive as strings because the multipart form
// encodes everything as text.
type ManualAddInput struct {
	Title            string
	Author           string
	Genre            string
	PageCount        string
	Published        string
	TargetFinishDate string
	Image            *ImageUpload
}

// UpdateFieldsInput is a partial update; nil fields are left untouched.
type UpdateFieldsInput struct {
	Title            *string
	Author           *string
	Genre            *string
	PageCount        *string
	Published        *string
	TargetFinishDate *string
	Image            *ImageUpload
}

type LibraryService interface {
	CopyFromCatalog(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error)
	List(ctx context.Context, userID string) ([]models.LibraryEntry, error)
	ManualAdd(ctx context.Context, userID string, in ManualAddInput) (*models.LibraryEntry, error)
	UpdateProgress(ctx context.Context, userID, bookID string, currentPage int) (status string, err error)
	UpdateFields(ctx context.Context, userID, bookID string, in UpdateFieldsInput) (map[string]any, error)
	Delete(ctx context.Context, userID, bookID string) error
}

type libraryService struct {
	repo        repository.LibraryRepository
	catalogRepo repository.CatalogRepository
	store       blobstore.Uploader
}

func NewLibraryService(
	repo repository.LibraryRepository,
	catalogRepo repository.CatalogRepository,
	store blobstore.Uploader,
) LibraryService {
	return &libraryService{
		repo:        repo,
		catalogRepo: catalogRepo,
		store:       store,
	}
}

// CopyFromCatalog copies a catalog book into the user's library by value.
// The entry keeps the catalog book id; later catalog edits do not propagate.
func (s *libraryService) CopyFromCatalog(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error) {
	book, err := s.catalogRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	entry := &models.LibraryEntry{
		UserID:      userID,
		BookID:      book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Genre:       book.Genre,
		PageCount:   book.PageCount,
		Published:   book.Published,
		CurrentPage: 0,
		Status:      models.StatusUnread,
		AddedAt:     addedAtNow(),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyInLibrary
		}
		return nil, err
	}

	return entry, nil
}

func (s *libraryService) List(ctx context.Context, userID string) ([]models.LibraryEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ManualAdd validates the submitted fields, uploads the cover image, then
// writes the entry. The document is only created after the upload reports
// success, so a failed upload leaves no partial state.
func (s *libraryService) ManualAdd(ctx context.Context, userID string, in ManualAddInput) (*models.LibraryEntry, error) {
	if !models.ValidGenre(in.Genre) {
		return nil, ErrInvalidGenre
	}

	pageCount, err := strconv.Atoi(in.PageCount)
	if err != nil {
		return nil, ErrNotNumeric
	}
	published, err := strconv.Atoi(in.Published)
	if err != nil {
		return nil, ErrNotNumeric
	}

	finishDate, err := parseFinishDate(in.TargetFinishDate)
	if err != nil {
		return nil, err
	}

	key := blobstore.ObjectKey(in.Image.Filename)
	imageURL, err := s.store.Upload(ctx, key, in.Image.ContentType, in.Image.Body)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	entry := &models.LibraryEntry{
		UserID:           userID,
		BookID:           uuid.New().String(),
		Title:            in.Title,
		Author:           in.Author,
		Genre:            in.Genre,
		PageCount:        pageCount,
		Published:        published,
		CurrentPage:      0,
		Status:           models.StatusUnread,
		AddedAt:          addedAtNow(),
		ImageURL:         imageURL,
		TargetFinishDate: &finishDate,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateProgress persists currentPage and the status derived from it.
func (s *libraryService) UpdateProgress(ctx context.Context, userID, bookID string, currentPage int) (string, error) {
	if currentPage < 0 {
		return "", ErrNegativePage
	}

	entry, err := s.repo.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEntryNotFound
		}
		return "", err
	}

	status := DeriveStatus(currentPage, entry.PageCount)
	if err := s.repo.Updates(ctx, userID, bookID, map[string]any{
		"current_page": currentPage,
		"status":       status,
	}); err != nil {
		return "", err
	}

	return status, nil
}

// UpdateFields applies only the fields present in the request and returns the
// set that actually changed, keyed by the API field names.
func (s *libraryService) UpdateFields(ctx context.Context, userID, bookID string, in UpdateFieldsInput) (map[string]any, error) {
	if _, err := s.repo.FindByUserAndBook(ctx, userID, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	columns := map[string]any{}
	changed := map[string]any{}

	if in.Title != nil {
		columns["title"] = *in.Title
		changed["title"] = *in.Title
	}
	if in.Author != nil {
		columns["author"] = *in.Author
		changed["author"] = *in.Author
	}
	if in.Genre != nil {
		if !models.ValidGenre(*in.Genre) {
			return nil, ErrInvalidGenre
		}
		columns["genre"] = *in.Genre
		changed["genre"] = *in.Genre
	}
	if in.PageCount != nil {
		pageCount, err := strconv.Atoi(*in.PageCount)
		if err != nil {
			return nil, ErrNotNumeric
		}
		columns["page_count"] = pageCount
		changed["pageCount"] = pageCount
	}
	if in.Published != nil {
		published, err := strconv.Atoi(*in.Published)
		if err != nil {
			return nil, ErrNotNumeric
		}
		columns["published"] = published
		changed["published"] = published
	}
	if in.TargetFinishDate != nil {
		finishDate, err := parseFinishDate(*in.TargetFinishDate)
		if err != nil {
			return nil, err
		}
		columns["target_finish_date"] = finishDate
		changed["targetFinishDate"] = finishDate
	}

	// Upload before the document write, same ordering as ManualAdd.
	if in.Image != nil {
		key := blobstore.ObjectKey(in.Image.Filename)
		imageURL, err := s.store.Upload(ctx, key, in.Image.ContentType, in.Image.Body)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		columns["image_url"] = imageURL
		changed["imageUrl"] = imageURL
	}

	// Empty payload: nothing to persist, zero changed fields.
	if len(columns) == 0 {
		return changed, nil
	}

	if err := s.repo.Updates(ctx, userID, bookID, columns); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	return changed, nil
}

func (s *libraryService) Delete(ctx context.Context, userID, bookID string) error {
	if err := s.repo.Delete(ctx, userID, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}

// parseFinishDate accepts a date or datetime and rejects values already in
// the past at the time of the write.
func parseFinishDate(value string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err = time.ParseInLocation(layout, value, jakarta); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	// Strictly before the current time fails; date-only input resolves to
	// midnight of that day.
	if parsed.Before(time.Now()) {
		return time.Time{}, ErrDateInPast
	}
	return parsed, nil
}
