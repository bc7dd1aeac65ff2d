package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bibliotheque-backend/internal/domains/author/model"
)

// RepositoryInterface is the store surface the author service depends on.
type RepositoryInterface interface {
	// FindAll returns every author.
	FindAll(ctx context.Context) ([]model.Author, error)

	// FindByID returns model.ErrAuthorNotFound when no document matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error)

	Insert(ctx context.Context, author *model.Author) (*model.Author, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Author, error)

	// DeleteByID reports whether a document was removed. Deletion is
	// non-cascading: referencing books keep their dangling auteur id.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)

	// BooksAfter1900 runs the lookup aggregation joining each author with
	// its books and counting those published after 1900.
	BooksAfter1900(ctx context.Context) ([]model.After1900Stat, error)
}
