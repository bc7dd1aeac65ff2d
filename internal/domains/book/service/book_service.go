package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bibliotheque-backend/internal/domains/book/model"
	"bibliotheque-backend/internal/domains/book/repository"
	"bibliotheque-backend/pkg/logger"
)

// BookService - Implements ServiceInterface
type BookService struct {
	repo repository.RepositoryInterface
}

// NewService - Constructor with DI
func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &BookService{repo: repo}
}

func (s *BookService) List(ctx context.Context, query map[string]string) ([]model.Book, error) {
	filter, params, err := model.BuildListFilter(query)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Pagination values are computed but not applied: the endpoint returns
	// the full match set.
	logger.Debug("list books", map[string]interface{}{
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
		"skip":  params.Skip,
	})

	return s.repo.Find(ctx, filter)
}

func (s *BookService) SearchByTitle(ctx context.Context, titre string) ([]model.Book, error) {
	return s.repo.Find(ctx, bson.M{
		"titre": bson.M{"$regex": titre, "$options": "i"},
	})
}

func (s *BookService) GetByID(ctx context.Context, id string) (*model.Book, error) {
	oid, err := parseBookID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *BookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	book := req.ToEntity()
	if err := book.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Insert(ctx, &book)
}

func (s *BookService) Update(ctx context.Context, id string, req *model.UpdateBookRequest) (*model.Book, error) {
	oid, err := parseBookID(id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	// Merge the provided fields and revalidate the merged record before
	// anything is persisted.
	merged := *existing
	req.ApplyTo(&merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	fields := req.Fields(merged)
	if len(fields) == 0 {
		return existing, nil
	}
	return s.repo.UpdateByID(ctx, oid, fields)
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	oid, err := parseBookID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrBookNotFound
	}
	return nil
}

// Borrow loads the record, applies the pure stock transition and persists
// the new state. Read-modify-write: concurrent borrows on the same record
// are not serialized by this service (the store owns write ordering).
func (s *BookService) Borrow(ctx context.Context, id string) (*model.Book, error) {
	oid, err := parseBookID(id)
	if err != nil {
		return nil, err
	}

	book, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	next, err := book.Borrow()
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateByID(ctx, oid, bson.M{
		"stock":      next.Stock,
		"disponible": next.Disponible,
	})
}

func (s *BookService) Return(ctx context.Context, id string) (*model.Book, error) {
	oid, err := parseBookID(id)
	if err != nil {
		return nil, err
	}

	book, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	next := book.Return()
	return s.repo.UpdateByID(ctx, oid, bson.M{
		"stock":      next.Stock,
		"disponible": next.Disponible,
	})
}

func (s *BookService) Available(ctx context.Context) ([]model.Book, error) {
	return s.repo.Find(ctx, bson.M{
		"disponible": true,
		"stock":      bson.M{"$gt": 0},
	})
}

func (s *BookService) ByGenre(ctx context.Context, genre string) ([]model.Book, error) {
	return s.repo.Find(ctx, bson.M{"genre": genre})
}

func (s *BookService) ByLanguage(ctx context.Context, langue string) ([]model.Book, error) {
	return s.repo.Find(ctx, bson.M{
		"langue": bson.M{"$regex": langue, "$options": "i"},
	})
}

func (s *BookService) ByMinStock(ctx context.Context, minStock int) ([]model.Book, error) {
	return s.repo.Find(ctx, bson.M{
		"stock": bson.M{"$gte": minStock},
	})
}

func (s *BookService) CountPerGenre(ctx context.Context) ([]model.GenreCount, error) {
	return s.repo.CountPerGenre(ctx)
}

func parseBookID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, model.ErrInvalidBookID
	}
	return oid, nil
}
