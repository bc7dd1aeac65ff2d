package service

import (
	"context"

	"bibliotheque-backend/internal/domains/book/model"
)

// ServiceInterface defines the business operations of the book domain.
type ServiceInterface interface {
	// List applies the filter builder to the raw query parameters and
	// returns the full match set (pagination is parsed but not applied).
	List(ctx context.Context, query map[string]string) ([]model.Book, error)

	// SearchByTitle performs a case-insensitive substring title search.
	SearchByTitle(ctx context.Context, titre string) ([]model.Book, error)

	GetByID(ctx context.Context, id string) (*model.Book, error)
	Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	Update(ctx context.Context, id string, req *model.UpdateBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id string) error

	// Borrow decrements stock by one; at stock 0 it fails with
	// model.ErrBookNotAvailable and leaves the record unchanged.
	Borrow(ctx context.Context, id string) (*model.Book, error)

	// Return increments stock by one and restores availability.
	Return(ctx context.Context, id string) (*model.Book, error)

	Available(ctx context.Context) ([]model.Book, error)
	ByGenre(ctx context.Context, genre string) ([]model.Book, error)
	ByLanguage(ctx context.Context, langue string) ([]model.Book, error)
	ByMinStock(ctx context.Context, minStock int) ([]model.Book, error)
	CountPerGenre(ctx context.Context) ([]model.GenreCount, error)
}
