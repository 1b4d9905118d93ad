package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bookshelf/internal/http-api/dto"
	"bookshelf/internal/http-api/models"
	"bookshelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the admin catalog endpoints. These are deliberately
// left without an auth gate for now; a role check can be added on the route
// group later.
type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) AddBook(c *gin.Context) {
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("All fields (title, author, genre, pageCount, published) are required!"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.svc.Add(ctx, service.AddBookInput{
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		PageCount: req.PageCount,
		Published: req.Published,
	})
	switch {
	case errors.Is(err, service.ErrInvalidGenre):
		c.JSON(http.StatusBadRequest, dto.Fail("Genre is not valid. Please select a genre from the provided options."))
		return
	case errors.Is(err, service.ErrTitleInUse):
		c.JSON(http.StatusBadRequest, dto.Fail("A book with this title already exists!"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.Error("An error occurred while adding the book"))
		return
	}

	c.JSON(http.StatusCreated, dto.Success("Book added successfully", dto.AddBookData{BookID: book.ID}))
}

func (h *CatalogHandler) GetAllBooks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	books, err := h.svc.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error("An error occurred while retrieving books"))
		return
	}

	if len(books) == 0 {
		c.JSON(http.StatusOK, dto.Success("No books found", []models.Book{}))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Books retrieved successfully", books))
}

func (h *CatalogHandler) DeleteBookByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("Book title is required in query parameter"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.DeleteByTitle(ctx, title); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail(fmt.Sprintf("Book with title %q not found", title)))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error("An error occurred while deleting the book"))
		return
	}

	c.JSON(http.StatusOK, dto.Success(fmt.Sprintf("Book with title %q deleted successfully", title), nil))
}
