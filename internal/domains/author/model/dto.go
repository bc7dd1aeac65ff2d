package model

import (
	"time"
)

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	Nom           string     `json:"nom"`
	Biographie    string     `json:"biographie,omitempty"`
	DateNaissance *time.Time `json:"date_naissance,omitempty"`
	Nationalite   string     `json:"nationalite,omitempty"`
}

// ToEntity builds an Author with creation timestamps.
func (r CreateAuthorRequest) ToEntity() Author {
	now := time.Now()
	return Author{
		Nom:           r.Nom,
		Biographie:    r.Biographie,
		DateNaissance: r.DateNaissance,
		Nationalite:   r.Nationalite,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateAuthorRequest - PATCH /authors/{id}
// Pointer fields distinguish "absent" from zero values.
type UpdateAuthorRequest struct {
	Nom           *string    `json:"nom,omitempty"`
	Biographie    *string    `json:"biographie,omitempty"`
	DateNaissance *time.Time `json:"date_naissance,omitempty"`
	Nationalite   *string    `json:"nationalite,omitempty"`
}

// ApplyTo merges the provided fields into the existing record.
func (r UpdateAuthorRequest) ApplyTo(author *Author) {
	if r.Nom != nil {
		author.Nom = *r.Nom
	}
	if r.Biographie != nil {
		author.Biographie = *r.Biographie
	}
	if r.DateNaissance != nil {
		author.DateNaissance = r.DateNaissance
	}
	if r.Nationalite != nil {
		author.Nationalite = *r.Nationalite
	}
	author.UpdatedAt = time.Now()
}

// Fields returns the $set document for the provided fields, always bumping
// the update timestamp.
func (r UpdateAuthorRequest) Fields(merged Author) map[string]interface{} {
	set := map[string]interface{}{
		"updatedAt": merged.UpdatedAt,
	}
	if r.Nom != nil {
		set["nom"] = merged.Nom
	}
	if r.Biographie != nil {
		set["biographie"] = merged.Biographie
	}
	if r.DateNaissance != nil {
		set["date_naissance"] = merged.DateNaissance
	}
	if r.Nationalite != nil {
		set["nationalite"] = merged.Nationalite
	}
	return set
}
