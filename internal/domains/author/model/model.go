package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the MongoDB collection holding author documents.
const Collection = "auteurs"

// Author is a catalog author record. Wire field names follow the documents
// already stored in the auteurs collection.
type Author struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Nom           string             `json:"nom" bson:"nom"`
	Biographie    string             `json:"biographie,omitempty" bson:"biographie,omitempty"`
	DateNaissance *time.Time         `json:"date_naissance,omitempty" bson:"date_naissance,omitempty"`
	Nationalite   string             `json:"nationalite,omitempty" bson:"nationalite,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Validate holds the author schema constraints; it runs on creation and on
// the merged record during partial updates.
func (a Author) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Nom,
			validation.Required.Error("le nom est obligatoire"),
		),
		validation.Field(&a.Biographie,
			validation.Length(0, 2000).Error("la biographie ne peut pas dépasser 2000 caractères"),
		),
	)
}

// After1900Stat is one row of the books-after-1900 aggregation: every
// author appears, zero-count authors included (left outer join).
type After1900Stat struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	Nom             string             `json:"nom" bson:"nom"`
	LivresApres1900 int                `json:"livres_apres_1900" bson:"livres_apres_1900"`
}
