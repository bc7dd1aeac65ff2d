package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	Titre            string   `json:"titre"`
	Auteur           string   `json:"auteur"`
	AnneePublication int      `json:"annee_publication"`
	Genre            []string `json:"genre"`
	ISBN             string   `json:"isbn"`
	Editeur          string   `json:"editeur"`
	Langue           string   `json:"langue,omitempty"`
	Disponible       *bool    `json:"disponible,omitempty"`
	Resume           string   `json:"resume,omitempty"`
	Stock            *int     `json:"stock,omitempty"`
}

// Validate checks the request shape; the full schema constraint set runs on
// the entity built by ToEntity.
func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Auteur,
			validation.Required.Error("l'auteur est obligatoire"),
			validation.By(validObjectIDHex),
		),
	)
}

// ToEntity builds a Book from the request, applying the schema defaults:
// langue lowercased with "français" fallback, disponible true, stock 1,
// date_ajout now.
func (r CreateBookRequest) ToEntity() Book {
	book := Book{
		Titre:            r.Titre,
		AnneePublication: r.AnneePublication,
		Genre:            r.Genre,
		ISBN:             r.ISBN,
		Editeur:          r.Editeur,
		Langue:           strings.ToLower(r.Langue),
		Disponible:       true,
		DateAjout:        time.Now(),
		Resume:           r.Resume,
		Stock:            DefaultStock,
	}
	if id, err := primitive.ObjectIDFromHex(r.Auteur); err == nil {
		book.Auteur = id
	}
	if book.Langue == "" {
		book.Langue = DefaultLangue
	}
	if r.Disponible != nil {
		book.Disponible = *r.Disponible
	}
	if r.Stock != nil {
		book.Stock = *r.Stock
	}
	return book
}

// UpdateBookRequest - PATCH /books/{id}
// Pointer fields distinguish "absent" from zero values so the handler can
// merge only what the client actually sent.
type UpdateBookRequest struct {
	Titre            *string  `json:"titre,omitempty"`
	Auteur           *string  `json:"auteur,omitempty"`
	AnneePublication *int     `json:"annee_publication,omitempty"`
	Genre            []string `json:"genre,omitempty"`
	ISBN             *string  `json:"isbn,omitempty"`
	Editeur          *string  `json:"editeur,omitempty"`
	Langue           *string  `json:"langue,omitempty"`
	Disponible       *bool    `json:"disponible,omitempty"`
	Resume           *string  `json:"resume,omitempty"`
	Stock            *int     `json:"stock,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Auteur,
			validation.By(validObjectIDHex),
		),
	)
}

// ApplyTo merges the provided fields into the existing record. The merged
// result must be revalidated before persisting.
func (r UpdateBookRequest) ApplyTo(book *Book) {
	if r.Titre != nil {
		book.Titre = *r.Titre
	}
	if r.Auteur != nil {
		if id, err := primitive.ObjectIDFromHex(*r.Auteur); err == nil {
			book.Auteur = id
		}
	}
	if r.AnneePublication != nil {
		book.AnneePublication = *r.AnneePublication
	}
	if r.Genre != nil {
		book.Genre = r.Genre
	}
	if r.ISBN != nil {
		book.ISBN = *r.ISBN
	}
	if r.Editeur != nil {
		book.Editeur = *r.Editeur
	}
	if r.Langue != nil {
		book.Langue = strings.ToLower(*r.Langue)
	}
	if r.Disponible != nil {
		book.Disponible = *r.Disponible
	}
	if r.Resume != nil {
		book.Resume = *r.Resume
	}
	if r.Stock != nil {
		book.Stock = *r.Stock
	}
}

// Fields returns the $set document for the provided fields only, normalized
// the same way ApplyTo normalizes them.
func (r UpdateBookRequest) Fields(merged Book) bson.M {
	set := bson.M{}
	if r.Titre != nil {
		set["titre"] = merged.Titre
	}
	if r.Auteur != nil {
		set["auteur"] = merged.Auteur
	}
	if r.AnneePublication != nil {
		set["annee_publication"] = merged.AnneePublication
	}
	if r.Genre != nil {
		set["genre"] = merged.Genre
	}
	if r.ISBN != nil {
		set["isbn"] = merged.ISBN
	}
	if r.Editeur != nil {
		set["editeur"] = merged.Editeur
	}
	if r.Langue != nil {
		set["langue"] = merged.Langue
	}
	if r.Disponible != nil {
		set["disponible"] = merged.Disponible
	}
	if r.Resume != nil {
		set["resume"] = merged.Resume
	}
	if r.Stock != nil {
		set["stock"] = merged.Stock
	}
	return set
}

// BookResponse is a Book plus its derived fields.
type BookResponse struct {
	Book
	EstDisponible bool   `json:"est_disponible"`
	StatutStock   string `json:"statut_stock"`
}

func ToBookResponse(b Book) BookResponse {
	return BookResponse{
		Book:          b,
		EstDisponible: b.EstDisponible(),
		StatutStock:   b.StatutStock(),
	}
}

func ToBookResponses(books []Book) []BookResponse {
	responses := make([]BookResponse, len(books))
	for i, b := range books {
		responses[i] = ToBookResponse(b)
	}
	return responses
}

// GenreCount is one row of the books-per-genre aggregation. The _id key is
// the grouping key emitted by the pipeline.
type GenreCount struct {
	Genre string `json:"_id" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

func validObjectIDHex(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required rule reports emptiness
	}
	if _, err := primitive.ObjectIDFromHex(s); err != nil {
		return validation.NewError("validation_object_id", "identifiant d'auteur invalide")
	}
	return nil
}
