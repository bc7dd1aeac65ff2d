package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorValidate(t *testing.T) {
	author := Author{Nom: "Victor Hugo"}
	assert.NoError(t, author.Validate())

	author.Nom = ""
	err := author.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "le nom est obligatoire")

	author.Nom = "Victor Hugo"
	author.Biographie = strings.Repeat("x", 2001)
	err = author.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "la biographie ne peut pas dépasser 2000 caractères")
}

func TestCreateAuthorRequestToEntity(t *testing.T) {
	born := time.Date(1802, 2, 26, 0, 0, 0, 0, time.UTC)
	req := CreateAuthorRequest{
		Nom:           "Victor Hugo",
		Biographie:    "Écrivain français.",
		DateNaissance: &born,
		Nationalite:   "Française",
	}

	author := req.ToEntity()
	assert.Equal(t, "Victor Hugo", author.Nom)
	assert.Equal(t, &born, author.DateNaissance)
	assert.WithinDuration(t, time.Now(), author.CreatedAt, time.Second)
	assert.Equal(t, author.CreatedAt, author.UpdatedAt)
}

func TestUpdateAuthorRequestApplyTo(t *testing.T) {
	author := Author{
		Nom:         "Stendhal",
		Nationalite: "Française",
		UpdatedAt:   time.Now().Add(-time.Hour),
	}

	bio := "Écrivain français, auteur du Rouge et le Noir."
	req := UpdateAuthorRequest{Biographie: &bio}
	req.ApplyTo(&author)

	assert.Equal(t, bio, author.Biographie)
	assert.Equal(t, "Stendhal", author.Nom)
	assert.WithinDuration(t, time.Now(), author.UpdatedAt, time.Second)
}

func TestUpdateAuthorRequestFields(t *testing.T) {
	author := Author{Nom: "Stendhal", UpdatedAt: time.Now()}

	nom := "Henri Beyle"
	req := UpdateAuthorRequest{Nom: &nom}
	req.ApplyTo(&author)

	set := req.Fields(author)
	assert.Equal(t, "Henri Beyle", set["nom"])
	assert.Contains(t, set, "updatedAt")
	assert.NotContains(t, set, "biographie")
}
