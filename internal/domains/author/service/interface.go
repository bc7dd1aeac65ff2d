package service

import (
	"context"

	"bibliotheque-backend/internal/domains/author/model"
)

// ServiceInterface defines the business operations of the author domain.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id string) (*model.Author, error)
	Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error)
	Update(ctx context.Context, id string, req *model.UpdateAuthorRequest) (*model.Author, error)

	// Delete removes an author without touching referencing books: no
	// referential integrity is enforced on this relationship.
	Delete(ctx context.Context, id string) error

	// BooksAfter1900 returns the per-author count of books published after
	// 1900, zero-count authors included.
	BooksAfter1900(ctx context.Context) ([]model.After1900Stat, error)
}
