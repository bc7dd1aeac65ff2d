package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bibliotheque-backend/internal/domains/author/model"
)

type fakeAuthorRepo struct {
	authors    map[primitive.ObjectID]model.Author
	stats      []model.After1900Stat
	lastUpdate bson.M
}

func newFakeAuthorRepo(authors ...model.Author) *fakeAuthorRepo {
	repo := &fakeAuthorRepo{authors: map[primitive.ObjectID]model.Author{}}
	for _, a := range authors {
		repo.authors[a.ID] = a
	}
	return repo
}

func (f *fakeAuthorRepo) FindAll(ctx context.Context) ([]model.Author, error) {
	result := []model.Author{}
	for _, a := range f.authors {
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAuthorRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return &a, nil
}

func (f *fakeAuthorRepo) Insert(ctx context.Context, author *model.Author) (*model.Author, error) {
	author.ID = primitive.NewObjectID()
	f.authors[author.ID] = *author
	return author, nil
}

func (f *fakeAuthorRepo) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	f.lastUpdate = fields
	if nom, ok := fields["nom"].(string); ok {
		a.Nom = nom
	}
	f.authors[id] = a
	return &a, nil
}

func (f *fakeAuthorRepo) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if _, ok := f.authors[id]; !ok {
		return false, nil
	}
	delete(f.authors, id)
	return true, nil
}

func (f *fakeAuthorRepo) BooksAfter1900(ctx context.Context) ([]model.After1900Stat, error) {
	return f.stats, nil
}

func storedAuthor() model.Author {
	return model.Author{
		ID:          primitive.NewObjectID(),
		Nom:         "Albert Camus",
		Nationalite: "Française",
	}
}

func TestGetByIDInvalidHex(t *testing.T) {
	svc := NewService(newFakeAuthorRepo())

	_, err := svc.GetByID(context.Background(), "not-hex")
	assert.ErrorIs(t, err, model.ErrInvalidAuthorID)
}

func TestCreateRejectsMissingName(t *testing.T) {
	repo := newFakeAuthorRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), &model.CreateAuthorRequest{Biographie: "..."})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "le nom est obligatoire")
	assert.Empty(t, repo.authors)
}

func TestCreateAssignsID(t *testing.T) {
	svc := NewService(newFakeAuthorRepo())

	author, err := svc.Create(context.Background(), &model.CreateAuthorRequest{Nom: "Gustave Flaubert"})
	require.NoError(t, err)
	assert.False(t, author.ID.IsZero())
}

func TestUpdateMergesAndRevalidates(t *testing.T) {
	existing := storedAuthor()
	repo := newFakeAuthorRepo(existing)
	svc := NewService(repo)

	empty := ""
	_, err := svc.Update(context.Background(), existing.ID.Hex(), &model.UpdateAuthorRequest{Nom: &empty})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "le nom est obligatoire")
	assert.Nil(t, repo.lastUpdate)
}

func TestUpdateSetsProvidedFields(t *testing.T) {
	existing := storedAuthor()
	repo := newFakeAuthorRepo(existing)
	svc := NewService(repo)

	nom := "A. Camus"
	author, err := svc.Update(context.Background(), existing.ID.Hex(), &model.UpdateAuthorRequest{Nom: &nom})
	require.NoError(t, err)
	assert.Equal(t, "A. Camus", author.Nom)
	assert.Equal(t, "A. Camus", repo.lastUpdate["nom"])
	assert.Contains(t, repo.lastUpdate, "updatedAt")
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(newFakeAuthorRepo())

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

// Authors with no qualifying books still appear with a zero count.
func TestBooksAfter1900KeepsZeroCounts(t *testing.T) {
	repo := newFakeAuthorRepo()
	repo.stats = []model.After1900Stat{
		{ID: primitive.NewObjectID(), Nom: "Albert Camus", LivresApres1900: 1},
		{ID: primitive.NewObjectID(), Nom: "Victor Hugo", LivresApres1900: 0},
	}
	svc := NewService(repo)

	stats, err := svc.BooksAfter1900(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 0, stats[1].LivresApres1900)
}
