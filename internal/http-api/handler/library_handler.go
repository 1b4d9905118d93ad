package handler

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"bookshelf/internal/http-api/dto"
	"bookshelf/internal/http-api/models"
	"bookshelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// Multipart size caps for the image-bearing routes.
const (
	manualAddMaxBytes   = 5 << 20  // 5 MB
	updateEntryMaxBytes = 10 << 20 // 10 MB
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

// AddToLibrary copies a catalog book into the user's library.
func (h *LibraryHandler) AddToLibrary(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.AddToLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("bookId is required"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.svc.CopyFromCatalog(ctx, userID, req.BookID); err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, dto.Fail("Book not found in public collection"))
		case errors.Is(err, service.ErrAlreadyInLibrary):
			c.JSON(http.StatusBadRequest, dto.Fail("Book already in your library"))
		default:
			c.JSON(http.StatusInternalServerError, dto.Error("An error occurred while adding the book"))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.Success("Book successfully added to your library", nil))
}

// GetLibrary lists every entry in the user's library.
func (h *LibraryHandler) GetLibrary(c *gin.Context) {
	userID := c.GetString("userID")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.svc.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error("An error occurred while fetching your library"))
		return
	}

	if len(entries) == 0 {
		c.JSON(http.StatusOK, dto.Success("No books found in your library", []models.LibraryEntry{}))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Books retrieved successfully", entries))
}

// UpdateStatus advances reading progress; the stored status is recomputed
// from the new page, never taken from the request.
func (h *LibraryHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetString("userID")
	bookID := c.Param("bookId")

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Current page is required and must be >= 0"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := h.svc.UpdateProgress(ctx, userID, bookID, *req.CurrentPage)
	switch {
	case errors.Is(err, service.ErrNegativePage):
		c.JSON(http.StatusBadRequest, dto.Fail("Current page is required and must be >= 0"))
		return
	case errors.Is(err, service.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("Book not found in your library"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.Error("An error occurred while updating the book status"))
		return
	}

	c.JSON(http.StatusOK, dto.Success(fmt.Sprintf("Book status updated to %s", status), nil))
}

// DeleteBook removes one entry from the user's library.
func (h *LibraryHandler) DeleteBook(c *gin.Context) {
	userID := c.GetString("userID")
	bookID := c.Param("bookId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, userID, bookID); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("Book not found in your library"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error("An error occurred while deleting the book"))
		return
	}

	c.JSON(http.StatusOK, dto.Success("Book successfully deleted from your library", nil))
}

// ManualAdd creates a library entry from a multipart form with a cover image.
func (h *LibraryHandler) ManualAdd(c *gin.Context) {
	userID := c.GetString("userID")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, manualAddMaxBytes)

	in := service.ManualAddInput{
		Title:            c.PostForm("title"),
		Author:           c.PostForm("author"),
		Genre:            c.PostForm("genre"),
		PageCount:        c.PostForm("pageCount"),
		Published:        c.PostForm("published"),
		TargetFinishDate: c.PostForm("targetFinishDate"),
	}

	file, err := c.FormFile("image")
	if err != nil || in.Title == "" || in.Author == "" || in.Genre == "" ||
		in.PageCount == "" || in.Published == "" || in.TargetFinishDate == "" {
		c.JSON(http.StatusBadRequest, dto.Fail("All fields and image are required!"))
		return
	}

	image, closeImage, err := openUpload(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error("Error uploading image"))
		return
	}
	defer closeImage()
	in.Image = image

	// Upload budget is wider than the usual request timeout.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	entry, err := h.svc.ManualAdd(ctx, userID, in)
	if err != nil {
		h.writeFieldError(c, err, "An error occurred while adding the book to your library")
		return
	}

	c.JSON(http.StatusCreated, dto.Success("Book added successfully to your library", dto.ManualAddData{
		BookID:   entry.BookID,
		ImageURL: entry.ImageURL,
	}))
}

// UpdateBookData edits entry fields from a multipart form; only submitted
// fields are applied, and a new image replaces the stored URL.
func (h *LibraryHandler) UpdateBookData(c *gin.Context) {
	userID := c.GetString("userID")
	bookID := c.Param("bookId")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, updateEntryMaxBytes)

	var in service.UpdateFieldsInput
	if v, ok := c.GetPostForm("title"); ok {
		in.Title = &v
	}
	if v, ok := c.GetPostForm("author"); ok {
		in.Author = &v
	}
	if v, ok := c.GetPostForm("genre"); ok {
		in.Genre = &v
	}
	if v, ok := c.GetPostForm("pageCount"); ok {
		in.PageCount = &v
	}
	if v, ok := c.GetPostForm("published"); ok {
		in.Published = &v
	}
	if v, ok := c.GetPostForm("targetFinishDate"); ok {
		in.TargetFinishDate = &v
	}

	if file, err := c.FormFile("image"); err == nil {
		image, closeImage, err := openUpload(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.Error("Error uploading image"))
			return
		}
		defer closeImage()
		in.Image = image
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	changed, err := h.svc.UpdateFields(ctx, userID, bookID, in)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, dto.Fail("Book not found in your library"))
			return
		}
		h.writeFieldError(c, err, "An error occurred while updating the book")
		return
	}

	c.JSON(http.StatusOK, dto.Success("Book updated successfully", changed))
}

// writeFieldError maps the shared field-validation sentinels; anything else
// is a storage or upload failure.
func (h *LibraryHandler) writeFieldError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrInvalidGenre):
		c.JSON(http.StatusBadRequest, dto.Fail("Genre is not valid. Please select a genre from the provided options."))
	case errors.Is(err, service.ErrNotNumeric):
		c.JSON(http.StatusBadRequest, dto.Fail("pageCount and published must be numbers!"))
	case errors.Is(err, service.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, dto.Fail("Target finish date is not a valid date."))
	case errors.Is(err, service.ErrDateInPast):
		c.JSON(http.StatusBadRequest, dto.Fail("Target finish date cannot be in the past."))
	default:
		c.JSON(http.StatusInternalServerError, dto.Error(internalMsg))
	}
}

func openUpload(file *multipart.FileHeader) (*service.ImageUpload, func(), error) {
	reader, err := file.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &service.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Body:        reader,
	}
	return upload, func() { reader.Close() }, nil
}
