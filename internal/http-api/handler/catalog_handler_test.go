package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/internal/http-api/dto"
	"bookshelf/internal/http-api/models"
	"bookshelf/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService mocks the CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Add(ctx context.Context, in service.AddBookInput) (*models.Book, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockCatalogService) List(ctx context.Context) ([]models.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockCatalogService) DeleteByTitle(ctx context.Context, title string) error {
	args := m.Called(ctx, title)
	return args.Error(0)
}

func TestAddBook_Created(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewCatalogHandler(svc)
	router := setupRouter()
	router.POST("/admin/addBooks", h.AddBook)

	book := &models.Book{ID: "book-1", Title: "Title X"}
	svc.On("Add", mock.Anything, service.AddBookInput{
		Title:     "Title X",
		Author:    "Author Y",
		Genre:     "Puisi / Sajak",
		PageCount: 120,
		Published: 2020,
	}).Return(book, nil)

	body, _ := json.Marshal(dto.AddBookRequest{
		Title:     "Title X",
		Author:    "Author Y",
		Genre:     "Puisi / Sajak",
		PageCount: 120,
		Published: 2020,
	})
	req, _ := http.NewRequest("POST", "/admin/addBooks", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, map[string]any{"bookId": "book-1"}, env.Data)
}

func TestAddBook_DuplicateTitle(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewCatalogHandler(svc)
	router := setupRouter()
	router.POST("/admin/addBooks", h.AddBook)

	svc.On("Add", mock.Anything, mock.Anything).Return(nil, service.ErrTitleInUse)

	body, _ := json.Marshal(dto.AddBookRequest{
		Title:     "Title X",
		Author:    "Author Y",
		Genre:     "Puisi / Sajak",
		PageCount: 120,
		Published: 2020,
	})
	req, _ := http.NewRequest("POST", "/admin/addBooks", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "A book with this title already exists!", env.Message)
}

func TestAddBook_MissingFields(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewCatalogHandler(svc)
	router := setupRouter()
	router.POST("/admin/addBooks", h.AddBook)

	req, _ := http.NewRequest("POST", "/admin/addBooks", bytes.NewBufferString(`{"title":"only"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Add")
}

func TestGetAllBooks_Empty(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewCatalogHandler(svc)
	router := setupRouter()
	router.GET("/admin/getBooks", h.GetAllBooks)

	svc.On("List", mock.Anything).Return([]models.Book{}, nil)

	req, _ := http.NewRequest("GET", "/admin/getBooks", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "No books found", env.Message)
	assert.Equal(t, []any{}, env.Data)
}

func TestDeleteBookByTitle_MissingQuery(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewCatalogHandler(svc)
	router := setupRouter()
	router.DELETE("/admin/deleteBooks", h.DeleteBookByTitle)

	req, _ := http.NewRequest("DELETE", "/admin/deleteBooks", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "DeleteByTitle")
}

func TestDeleteBookByTitle_NotFound(t *testing.T) {
	svc := new(MockCatalogService)
	h := NewCatalogHandler(svc)
	router := setupRouter()
	router.DELETE("/admin/deleteBooks", h.DeleteBookByTitle)

	svc.On("DeleteByTitle", mock.Anything, "Missing").Return(service.ErrBookNotFound)

	req, _ := http.NewRequest("DELETE", "/admin/deleteBooks?title=Missing", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
