package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/catalog/service/internal/storage"
)

// Service contains business logic for product management and orchestrates
// image storage. The registry and the storage client are injected once at startup.
type Service struct {
	repo  *Repository
	store storage.Storage
}

// NewService creates a new product Service.
func NewService(repo *Repository, store storage.Storage) *Service {
	return &Service{repo: repo, store: store}
}

// imageKey derives the fixed storage location of a product's image. One image
// per product; uploads to the same product overwrite the previous object.
func imageKey(id string) string {
	return "products/" + id + "/image"
}

// List returns a snapshot of all products. Order is unspecified.
func (s *Service) List(ctx context.Context) []*Product {
	return s.repo.List()
}

// Get returns a product by id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.Get(id)
}

// Create stores a new product, assigning a generated id when none is supplied,
// and returns the stored record.
func (s *Service) Create(ctx context.Context, p *Product) *Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.repo.Put(p)
	return p
}

// Update replaces the record at id wholesale with p. The id in p is
// overwritten with the path id. When imageProvided is false the stored
// record's ImageURL is carried over, so a plain update never clears a
// previously uploaded image; an explicit null in the payload does clear it.
// Returns ErrNotFound when id is absent.
func (s *Service) Update(ctx context.Context, id string, p *Product, imageProvided bool) (*Product, error) {
	existing, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	p.ID = id
	if !imageProvided {
		p.ImageURL = existing.ImageURL
	}
	s.repo.Put(p)
	return p, nil
}

// Delete removes the product at id, reporting whether anything was removed.
// When the removed record had an uploaded image, the stored object is deleted
// best-effort: the record is already gone from the registry, and a failed
// object delete must not undo that.
func (s *Service) Delete(ctx context.Context, id string) bool {
	removed, ok := s.repo.Delete(id)
	if !ok {
		return false
	}

	if removed.ImageURL != nil {
		if err := s.store.Delete(ctx, imageKey(id)); err != nil {
			log.Printf("product %s: delete stored image failed (ignored): %v", id, err)
		}
	}
	return true
}

// UploadImage stores the image bytes for the product at id and records the
// resulting public URL on it. Returns ErrNotFound when id is absent; nothing
// is written to storage in that case.
func (s *Service) UploadImage(ctx context.Context, id string, reader io.Reader, size int64, contentType string) (*Product, error) {
	p, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	url, err := s.store.Upload(ctx, imageKey(id), reader, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload image for product %s: %w", id, err)
	}

	p.ImageURL = &url
	s.repo.Put(p)
	return p, nil
}

// DownloadImage returns the stored image bytes for the product at id. There is
// no existence pre-check: a product without an image and an unknown id both
// surface as the storage client's not-found error.
func (s *Service) DownloadImage(ctx context.Context, id string) ([]byte, error) {
	return s.store.Download(ctx, imageKey(id))
}

// IsNotFound returns true when the error indicates a product was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
