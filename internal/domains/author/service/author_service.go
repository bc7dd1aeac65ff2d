package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bibliotheque-backend/internal/domains/author/model"
	"bibliotheque-backend/internal/domains/author/repository"
)

// AuthorService - Implements ServiceInterface
type AuthorService struct {
	repo repository.RepositoryInterface
}

// NewService - Constructor with DI
func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &AuthorService{repo: repo}
}

func (s *AuthorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *AuthorService) GetByID(ctx context.Context, id string) (*model.Author, error) {
	oid, err := parseAuthorID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *AuthorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	author := req.ToEntity()
	if err := author.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, &author)
}

func (s *AuthorService) Update(ctx context.Context, id string, req *model.UpdateAuthorRequest) (*model.Author, error) {
	oid, err := parseAuthorID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	merged := *existing
	req.ApplyTo(&merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	return s.repo.UpdateByID(ctx, oid, bson.M(req.Fields(merged)))
}

func (s *AuthorService) Delete(ctx context.Context, id string) error {
	oid, err := parseAuthorID(id)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrAuthorNotFound
	}
	return nil
}

func (s *AuthorService) BooksAfter1900(ctx context.Context) ([]model.After1900Stat, error) {
	return s.repo.BooksAfter1900(ctx)
}

func parseAuthorID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, model.ErrInvalidAuthorID
	}
	return oid, nil
}
