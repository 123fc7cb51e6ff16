package product

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sportsynce/product-service/internal/media"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ValidationError reports a rejected form field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Service implements the two product operations. It holds no state across
// requests; the media store and repository are the only collaborators.
type Service struct {
	media media.Store
	repo  Repository
	log   *zap.Logger
	now   func() time.Time
}

func NewService(mediaStore media.Store, repo Repository, log *zap.Logger) *Service {
	return &Service{
		media: mediaStore,
		repo:  repo,
		log:   log,
		now:   time.Now,
	}
}

// Create validates and coerces the submission, uploads the image and inserts
// the document. The upload must complete before the insert is attempted; if
// the insert fails afterwards the uploaded asset is left behind (accepted,
// there is no compensating delete).
func (s *Service) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	f := in.Fields
	if f.Name == "" {
		return nil, invalid("name", "is required")
	}
	if f.Category == "" {
		return nil, invalid("category", "is required")
	}
	if in.Image == nil {
		return nil, invalid("image", "file is required")
	}

	price, err := parsePrice(f.Price)
	if err != nil {
		return nil, err
	}
	stock, err := parseStock(f.Stock)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.media.Upload(ctx, in.Image.Reader, in.Image.Name)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	p := &Product{
		Name:        f.Name,
		Price:       price,
		Category:    f.Category,
		Stock:       stock,
		ImageURL:    imageURL,
		Description: f.Description,
		Sizes:       parseSizes(f.Sizes),
		AddedBy:     f.AddedBy,
		CreatedAt:   s.now().UTC(),
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}

	s.log.Info("product created",
		zap.String("product_id", id),
		zap.String("name", p.Name),
		zap.String("category", p.Category),
	)

	return &CreateResult{ProductID: id, ImageURL: imageURL}, nil
}

// Update merges only the supplied fields into an existing product.
// Absent fields are never touched and never reset; updatedAt is always
// stamped, even when nothing else changed.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*UpdateResult, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.D{}
	imageURL := existing.ImageURL

	if in.Image != nil {
		url, err := s.media.Upload(ctx, in.Image.Reader, in.Image.Name)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		imageURL = url
		set = append(set, bson.E{Key: "imageUrl", Value: url})
	}

	f := in.Fields
	if f.Name != "" {
		set = append(set, bson.E{Key: "name", Value: f.Name})
	}
	if f.Price != "" {
		price, err := parsePrice(f.Price)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "price", Value: price})
	}
	if f.Category != "" {
		set = append(set, bson.E{Key: "category", Value: f.Category})
	}
	if f.Stock != "" {
		stock, err := parseStock(f.Stock)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "stock", Value: stock})
	}
	if f.Description != "" {
		set = append(set, bson.E{Key: "description", Value: f.Description})
	}
	if f.Sizes != "" {
		set = append(set, bson.E{Key: "sizes", Value: parseSizes(f.Sizes)})
	}

	set = append(set, bson.E{Key: "updatedAt", Value: s.now().UTC()})

	if err := s.repo.UpdateFields(ctx, id, set); err != nil {
		return nil, err
	}

	updatedFields := lo.Map(set, func(e bson.E, _ int) string { return e.Key })

	s.log.Info("product updated",
		zap.String("product_id", id),
		zap.Strings("updated_fields", updatedFields),
	)

	return &UpdateResult{
		ProductID:     id,
		ImageURL:      imageURL,
		UpdatedFields: updatedFields,
	}, nil
}

func parsePrice(raw string) (float64, error) {
	if raw == "" {
		return 0, invalid("price", "is required")
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, invalid("price", "must be a valid number")
	}
	return price, nil
}

func parseStock(raw string) (int, error) {
	if raw == "" {
		return 0, invalid("stock", "is required")
	}
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid("stock", "must be a whole number")
	}
	return stock, nil
}

// parseSizes splits a comma-delimited list and trims each token.
// Empty or absent input yields an empty slice, not nil.
func parseSizes(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return lo.Map(strings.Split(raw, ","), func(tok string, _ int) string {
		return strings.TrimSpace(tok)
	})
}
