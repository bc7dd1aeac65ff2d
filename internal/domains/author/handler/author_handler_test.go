package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bibliotheque-backend/internal/domains/author/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthorService struct {
	authors []model.Author
	author  *model.Author
	stats   []model.After1900Stat
	err     error
}

func (s *stubAuthorService) List(ctx context.Context) ([]model.Author, error) {
	return s.authors, s.err
}

func (s *stubAuthorService) GetByID(ctx context.Context, id string) (*model.Author, error) {
	return s.author, s.err
}

func (s *stubAuthorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	return s.author, s.err
}

func (s *stubAuthorService) Update(ctx context.Context, id string, req *model.UpdateAuthorRequest) (*model.Author, error) {
	return s.author, s.err
}

func (s *stubAuthorService) Delete(ctx context.Context, id string) error {
	return s.err
}

func (s *stubAuthorService) BooksAfter1900(ctx context.Context) ([]model.After1900Stat, error) {
	return s.stats, s.err
}

func newTestRouter(svc *stubAuthorService) *gin.Engine {
	h := NewHandler(svc)
	router := gin.New()
	authors := router.Group("/authors")
	{
		authors.GET("", h.ListAuthors)
		authors.GET("/stats/books-after-1900", h.BooksAfter1900Stats)
		authors.GET("/:id", h.GetAuthor)
		authors.POST("", h.CreateAuthor)
		authors.PATCH("/:id", h.UpdateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
	return router
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestListAuthorsBareArray(t *testing.T) {
	svc := &stubAuthorService{authors: []model.Author{{Nom: "Victor Hugo"}}}
	w := perform(newTestRouter(svc), http.MethodGet, "/authors", "")

	require.Equal(t, http.StatusOK, w.Code)

	var authors []model.Author
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &authors))
	require.Len(t, authors, 1)
	assert.Equal(t, "Victor Hugo", authors[0].Nom)
}

func TestGetAuthorNotFound(t *testing.T) {
	svc := &stubAuthorService{err: model.ErrAuthorNotFound}
	w := perform(newTestRouter(svc), http.MethodGet, "/authors/"+primitive.NewObjectID().Hex(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Auteur non trouvé", messageOf(t, w))
}

func TestGetAuthorInvalidID(t *testing.T) {
	svc := &stubAuthorService{err: model.ErrInvalidAuthorID}
	w := perform(newTestRouter(svc), http.MethodGet, "/authors/zzz", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Identifiant d'auteur invalide", messageOf(t, w))
}

func TestCreateAuthorCreated(t *testing.T) {
	author := model.Author{ID: primitive.NewObjectID(), Nom: "Albert Camus"}
	svc := &stubAuthorService{author: &author}
	w := perform(newTestRouter(svc), http.MethodPost, "/authors", `{"nom":"Albert Camus"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp model.Author
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Albert Camus", resp.Nom)
}

func TestDeleteAuthorMessage(t *testing.T) {
	svc := &stubAuthorService{}
	w := perform(newTestRouter(svc), http.MethodDelete, "/authors/"+primitive.NewObjectID().Hex(), "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Auteur supprimé avec succès", messageOf(t, w))
}

func TestBooksAfter1900Stats(t *testing.T) {
	svc := &stubAuthorService{stats: []model.After1900Stat{
		{ID: primitive.NewObjectID(), Nom: "Albert Camus", LivresApres1900: 2},
		{ID: primitive.NewObjectID(), Nom: "Victor Hugo", LivresApres1900: 0},
	}}
	w := perform(newTestRouter(svc), http.MethodGet, "/authors/stats/books-after-1900", "")

	require.Equal(t, http.StatusOK, w.Code)

	var stats []model.After1900Stat
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Len(t, stats, 2)
	assert.Equal(t, 0, stats[1].LivresApres1900)
}
