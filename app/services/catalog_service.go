package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/shashiranjanraj/freshbasket/app/models"
	"github.com/shashiranjanraj/freshbasket/pkg/storage"
)

// CatalogService serves the read side of the catalogue plus product image
// uploads.
type CatalogService struct {
	catalog CatalogStore
	images  ImageStore
}

// ImageStore persists a product's image URL after upload.
type ImageStore interface {
	SetProductImage(ctx context.Context, productID uint, url string) error
}

func NewCatalogService(catalog CatalogStore, images ImageStore) *CatalogService {
	return &CatalogService{catalog: catalog, images: images}
}

// ListProducts returns the catalogue in ascending product_id order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	return products, nil
}

// GetProduct returns one product by id.
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	p, found, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	if !found {
		return nil, &NotFoundError{Entity: "product", ID: id}
	}
	return &p, nil
}

// UploadProductImage stores the image on the configured disk and records its
// public URL on the product.
func (s *CatalogService) UploadProductImage(ctx context.Context, productID uint, filename string, r io.Reader) (string, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", &ValidationError{Fields: map[string]string{"image": "unsupported image type"}}
	}

	key := fmt.Sprintf("products/%d%s", productID, ext)
	if err := storage.PutStream(key, r); err != nil {
		return "", &InternalError{Err: fmt.Errorf("store image: %w", err)}
	}

	url := storage.URL(key)
	if err := s.images.SetProductImage(ctx, productID, url); err != nil {
		return "", &InternalError{Err: fmt.Errorf("record image url: %w", err)}
	}
	return url, nil
}

// ReferenceService lists stores, locations, and order history.
type ReferenceService struct {
	refs   ReferenceStore
	orders OrderStore
}

func NewReferenceService(refs ReferenceStore, orders OrderStore) *ReferenceService {
	return &ReferenceService{refs: refs, orders: orders}
}

func (s *ReferenceService) ListStores(ctx context.Context) ([]models.Store, error) {
	stores, err := s.refs.ListStores(ctx)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	return stores, nil
}

func (s *ReferenceService) ListLocations(ctx context.Context) ([]models.Location, error) {
	locations, err := s.refs.ListLocations(ctx)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	return locations, nil
}

// ListOrders returns a user's order history with line items.
func (s *ReferenceService) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, err := s.orders.ListOrders(ctx, userID)
	if err != nil {
		return nil, &InternalError{Err: err}
	}
	return orders, nil
}
