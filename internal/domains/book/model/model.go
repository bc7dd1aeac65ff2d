package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the MongoDB collection holding book documents.
const Collection = "livres"

// Stock status labels exposed on book responses.
const (
	StockStatusOut  = "Épuisé"
	StockStatusLow  = "Stock faible"
	StockStatusIn   = "En stock"
	LowStockCeiling = 5
)

// Defaults applied when a creation request omits the field.
const (
	DefaultLangue = "français"
	DefaultStock  = 1
)

// Book is a catalog record. Field names on the wire (BSON and JSON)
// follow the documents already stored in the livres collection.
type Book struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Titre            string             `json:"titre" bson:"titre"`
	Auteur           primitive.ObjectID `json:"auteur" bson:"auteur"`
	AnneePublication int                `json:"annee_publication" bson:"annee_publication"`
	Genre            []string           `json:"genre" bson:"genre"`
	ISBN             string             `json:"isbn" bson:"isbn"`
	Editeur          string             `json:"editeur" bson:"editeur"`
	Langue           string             `json:"langue" bson:"langue"`
	Disponible       bool               `json:"disponible" bson:"disponible"`
	DateAjout        time.Time          `json:"date_ajout" bson:"date_ajout"`
	Resume           string             `json:"resume,omitempty" bson:"resume,omitempty"`
	Stock            int                `json:"stock" bson:"stock"`
}

// Validate holds the full schema constraint set for a book record. It runs
// on creation and again on the merged record during partial updates, so a
// PATCH can never leave an invalid document behind.
func (b Book) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Titre,
			validation.Required.Error("le titre est obligatoire"),
		),
		validation.Field(&b.Auteur,
			validation.By(requiredObjectID("l'auteur est obligatoire")),
		),
		validation.Field(&b.AnneePublication,
			validation.Required.Error("l'année de publication est obligatoire"),
			validation.Min(1000).Error("l'année de publication doit être au moins 1000"),
			validation.Max(time.Now().Year()).Error("l'année de publication ne peut pas être dans le futur"),
		),
		validation.Field(&b.Genre,
			validation.Required.Error("au moins un genre est obligatoire"),
		),
		validation.Field(&b.ISBN,
			validation.Required.Error("l'ISBN est obligatoire"),
			validation.By(validateISBN),
		),
		validation.Field(&b.Editeur,
			validation.Required.Error("l'éditeur est obligatoire"),
		),
		validation.Field(&b.Resume,
			validation.Length(0, 2000).Error("le résumé ne peut pas dépasser 2000 caractères"),
		),
		validation.Field(&b.Stock,
			validation.Min(0).Error("le stock ne peut pas être négatif"),
		),
	)
}

// EstDisponible reports whether the book can actually be borrowed.
func (b Book) EstDisponible() bool {
	return b.Disponible && b.Stock > 0
}

// StatutStock classifies the stock level.
func (b Book) StatutStock() string {
	switch {
	case b.Stock == 0:
		return StockStatusOut
	case b.Stock <= LowStockCeiling:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// Borrow returns the book state after one copy is taken. The caller is
// responsible for persisting the new state. Availability flips to false
// exactly when the last copy leaves the shelf.
func (b Book) Borrow() (Book, error) {
	if b.Stock <= 0 {
		return b, ErrBookNotAvailable
	}
	b.Stock--
	if b.Stock == 0 {
		b.Disponible = false
	}
	return b, nil
}

// Return returns the book state after one copy comes back. Availability is
// restored unconditionally.
func (b Book) Return() Book {
	b.Stock++
	b.Disponible = true
	return b
}

func requiredObjectID(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		id, _ := value.(primitive.ObjectID)
		if id.IsZero() {
			return validation.NewError("validation_required", msg)
		}
		return nil
	}
}
