package product

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sportsynce/product-service/internal/httpapi"
	"github.com/sportsynce/product-service/internal/store"
)

type servicer interface {
	Create(ctx context.Context, in CreateInput) (*CreateResult, error)
	Update(ctx context.Context, id string, in UpdateInput) (*UpdateResult, error)
}

type Handler struct {
	service servicer
}

func NewHandler(service servicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/upload", h.create)
	r.PUT("/update/:productId", h.update)
}

func (h *Handler) create(c *gin.Context) {
	image, closeImage, err := formImage(c)
	if err != nil {
		fail(c, httpapi.BadRequest("invalid multipart form"), err)
		return
	}
	defer closeImage()

	in := CreateInput{
		Fields: CreateRequest{
			Name:        c.PostForm("name"),
			Price:       c.PostForm("price"),
			Category:    c.PostForm("category"),
			Stock:       c.PostForm("stock"),
			Description: c.PostForm("description"),
			Sizes:       c.PostForm("sizes"),
			AddedBy:     c.PostForm("addedBy"),
		},
		Image: image,
	}

	result, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			fail(c, httpapi.BadRequest(vErr.Error()), err)
			return
		}
		fail(c, httpapi.Internal("Failed to upload product."), err)
		return
	}

	c.JSON(http.StatusOK, CreateResponse{
		Success:   true,
		Message:   "Product added!",
		ProductID: result.ProductID,
		ImageURL:  result.ImageURL,
	})
}

func (h *Handler) update(c *gin.Context) {
	productID := c.Param("productId")

	image, closeImage, err := formImage(c)
	if err != nil {
		fail(c, httpapi.BadRequest("invalid multipart form"), err)
		return
	}
	defer closeImage()

	in := UpdateInput{
		Fields: UpdateRequest{
			Name:        c.PostForm("name"),
			Price:       c.PostForm("price"),
			Category:    c.PostForm("category"),
			Stock:       c.PostForm("stock"),
			Description: c.PostForm("description"),
			Sizes:       c.PostForm("sizes"),
		},
		Image: image,
	}

	result, err := h.service.Update(c.Request.Context(), productID, in)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			fail(c, httpapi.NotFound("Product not found"), err)
		default:
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				fail(c, httpapi.BadRequest(vErr.Error()), err)
				return
			}
			fail(c, httpapi.Internal("Failed to update product."), err)
		}
		return
	}

	c.JSON(http.StatusOK, UpdateResponse{
		Success:       true,
		Message:       "Product updated successfully!",
		ProductID:     result.ProductID,
		ImageURL:      result.ImageURL,
		UpdatedFields: result.UpdatedFields,
	})
}

// formImage extracts the optional "image" file from the multipart form.
// A missing file is not an error; the service decides whether it is required.
func formImage(c *gin.Context) (*Upload, func(), error) {
	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &Upload{Name: header.Filename, Reader: file}, func() { _ = file.Close() }, nil
}

// fail records the underlying error for the logging middleware and attaches
// the client-facing API error for the envelope middleware to render.
func fail(c *gin.Context, apiErr *httpapi.Error, cause error) {
	_ = c.Error(cause).SetMeta(apiErr)
	c.Abort()
}
