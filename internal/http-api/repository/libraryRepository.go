package repository

import (
	"context"
	"fmt"

	"bookshelf/internal/http-api/models"

	"gorm.io/gorm"
)

type LibraryRepository interface {
	Create(ctx context.Context, entry *models.LibraryEntry) error
	FindByUserAndBook(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error)
	ListByUser(ctx context.Context, userID string) ([]models.LibraryEntry, error)
	Updates(ctx context.Context, userID, bookID string, fields map[string]any) error
	Delete(ctx context.Context, userID, bookID string) error
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) Create(ctx context.Context, entry *models.LibraryEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("add to library: %w", err)
	}
	return nil
}

func (r *libraryRepository) FindByUserAndBook(ctx context.Context, userID, bookID string) (*models.LibraryEntry, error) {
	var entry models.LibraryEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *libraryRepository) ListByUser(ctx context.Context, userID string) ([]models.LibraryEntry, error) {
	var entries []models.LibraryEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list library: %w", err)
	}
	return entries, nil
}

// Updates applies a partial column update to one entry.
func (r *libraryRepository) Updates(ctx context.Context, userID, bookID string, fields map[string]any) error {
	result := r.db.WithContext(ctx).
		Model(&models.LibraryEntry{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("update library entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *libraryRepository) Delete(ctx context.Context, userID, bookID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.LibraryEntry{})
	if result.Error != nil {
		return fmt.Errorf("remove from library: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
