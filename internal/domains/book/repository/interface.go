package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bibliotheque-backend/internal/domains/book/model"
)

// RepositoryInterface is the store surface the book service depends on.
// The document store exclusively owns persisted state; every method is a
// single store call.
type RepositoryInterface interface {
	// Find returns every book matching the filter document.
	Find(ctx context.Context, filter bson.M) ([]model.Book, error)

	// FindByID returns model.ErrBookNotFound when no document matches.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)

	// Insert persists a new book. The store rejects uniqueness violations
	// on titre and isbn with a duplicate key error.
	Insert(ctx context.Context, book *model.Book) (*model.Book, error)

	// UpdateByID applies a partial $set and returns the updated record, or
	// model.ErrBookNotFound.
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Book, error)

	// DeleteByID reports whether a document was removed.
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)

	// CountMatching counts documents matching the filter.
	CountMatching(ctx context.Context, filter bson.M) (int64, error)

	// CountPerGenre runs the books-per-genre aggregation, descending by count.
	CountPerGenre(ctx context.Context) ([]model.GenreCount, error)

	// EnsureIndexes creates the unique, lookup and text indexes.
	EnsureIndexes(ctx context.Context) error
}
