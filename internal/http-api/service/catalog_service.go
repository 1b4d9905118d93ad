package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bookshelf/internal/http-api/models"
	"bookshelf/internal/http-api/repository"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	ErrTitleInUse   = errors.New("book title already exists")
	ErrInvalidGenre = errors.New("genre is not valid")
	ErrBookNotFound = errors.New("book not found")
)

const catalogCacheKey = "catalog:books"

type AddBookInput struct {
	Title     string
	Author    string
	Genre     string
	PageCount int
	Published int
}

type CatalogService interface {
	Add(ctx context.Context, in AddBookInput) (*models.Book, error)
	List(ctx context.Context) ([]models.Book, error)
	DeleteByTitle(ctx context.Context, title string) error
}

type catalogService struct {
	repo     repository.CatalogRepository
	cache    *redis.Client // nil disables caching
	cacheTTL time.Duration
}

func NewCatalogService(repo repository.CatalogRepository, cache *redis.Client, cacheTTL time.Duration) CatalogService {
	return &catalogService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *catalogService) Add(ctx context.Context, in AddBookInput) (*models.Book, error) {
	if !models.ValidGenre(in.Genre) {
		return nil, ErrInvalidGenre
	}

	book := &models.Book{
		Title:     in.Title,
		Author:    in.Author,
		Genre:     in.Genre,
		PageCount: in.PageCount,
		Published: in.Published,
	}

	// Title uniqueness is enforced by the store-level index; the duplicate
	// sentinel covers concurrent adds that a pre-check would miss.
	if err := s.repo.Create(ctx, book); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrTitleInUse
		}
		return nil, err
	}

	s.invalidateCache(ctx)
	return book, nil
}

func (s *catalogService) List(ctx context.Context) ([]models.Book, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var books []models.Book
			if err := json.Unmarshal(cached, &books); err == nil {
				return books, nil
			}
		}
	}

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(books); err == nil {
			// cache failures are not worth failing the request over
			s.cache.Set(ctx, catalogCacheKey, payload, s.cacheTTL)
		}
	}

	return books, nil
}

// DeleteByTitle removes the first book matching title.
func (s *catalogService) DeleteByTitle(ctx context.Context, title string) error {
	book, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, book.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *catalogService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Del(ctx, catalogCacheKey)
	}
}
