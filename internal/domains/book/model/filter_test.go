package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildListFilterEmpty(t *testing.T) {
	filter, params, err := BuildListFilter(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, bson.M{}, filter)
	assert.Equal(t, ListParams{Page: 1, Limit: 10, Skip: 0}, params)
}

func TestBuildListFilterIgnoresUnknownParams(t *testing.T) {
	filter, _, err := BuildListFilter(map[string]string{"couleur": "rouge", "sort": "asc"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{}, filter)
}

func TestBuildListFilterIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()

	filter, _, err := BuildListFilter(map[string]string{
		"_id": a.Hex() + "," + b.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{
		"_id": bson.M{"$all": []primitive.ObjectID{a, b}},
	}, filter)
}

func TestBuildListFilterBadID(t *testing.T) {
	_, _, err := BuildListFilter(map[string]string{"_id": "not-hex"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestBuildListFilterGenreOperators(t *testing.T) {
	filter, _, err := BuildListFilter(map[string]string{"genres": "Roman,Drame"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"genre": bson.M{"$in": []string{"Roman", "Drame"}}}, filter)

	filter, _, err = BuildListFilter(map[string]string{"allGenres": "Roman,Drame"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"genre": bson.M{"$all": []string{"Roman", "Drame"}}}, filter)

	filter, _, err = BuildListFilter(map[string]string{"excludeGenres": "Horreur"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"genre": bson.M{"$nin": []string{"Horreur"}}}, filter)
}

func TestBuildListFilterGenreOperatorsMerge(t *testing.T) {
	filter, _, err := BuildListFilter(map[string]string{
		"genres":        "Roman,Conte",
		"excludeGenres": "Horreur",
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{
		"genre": bson.M{
			"$in":  []string{"Roman", "Conte"},
			"$nin": []string{"Horreur"},
		},
	}, filter)
}

func TestBuildListFilterLanguage(t *testing.T) {
	filter, _, err := BuildListFilter(map[string]string{"langue": "français"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"langue": "français"}, filter)

	// English alias targets the same field
	filter, _, err = BuildListFilter(map[string]string{"language": "espagnol"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"langue": "espagnol"}, filter)
}

func TestBuildListFilterRegexFields(t *testing.T) {
	filter, _, err := BuildListFilter(map[string]string{"titre": "prince"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"titre": bson.M{"$regex": "prince", "$options": "i"}}, filter)

	filter, _, err = BuildListFilter(map[string]string{"title": "prince"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"titre": bson.M{"$regex": "prince", "$options": "i"}}, filter)

	filter, _, err = BuildListFilter(map[string]string{"author": "hugo"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"auteur": bson.M{"$regex": "hugo", "$options": "i"}}, filter)
}

func TestBuildListFilterSearch(t *testing.T) {
	filter, _, err := BuildListFilter(map[string]string{"search": "  prince  "})
	require.NoError(t, err)
	assert.Equal(t, bson.M{
		"$text": bson.M{
			"$search":             "prince",
			"$caseSensitive":      false,
			"$diacriticSensitive": false,
		},
	}, filter)
}

func TestBuildListFilterEmptySearchMatchesNothing(t *testing.T) {
	filter, _, err := BuildListFilter(map[string]string{"search": "   "})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": bson.M{"$exists": false}}, filter)
}

// An empty search wins over any other clause on _id: it is evaluated last
// so the match-none clause is what reaches the store.
func TestBuildListFilterEmptySearchOverridesIDs(t *testing.T) {
	filter, _, err := BuildListFilter(map[string]string{
		"_id":    primitive.NewObjectID().Hex(),
		"search": "",
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": bson.M{"$exists": false}}, filter)
}

func TestBuildListFilterCombined(t *testing.T) {
	filter, _, err := BuildListFilter(map[string]string{
		"genres": "Roman",
		"langue": "français",
		"titre":  "rouge",
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{
		"genre":  bson.M{"$in": []string{"Roman"}},
		"langue": "français",
		"titre":  bson.M{"$regex": "rouge", "$options": "i"},
	}, filter)
}

func TestExtractListParams(t *testing.T) {
	tests := []struct {
		name  string
		query map[string]string
		want  ListParams
	}{
		{"defaults", map[string]string{}, ListParams{Page: 1, Limit: 10, Skip: 0}},
		{"explicit", map[string]string{"page": "3", "limit": "20"}, ListParams{Page: 3, Limit: 20, Skip: 40}},
		{"garbage page", map[string]string{"page": "abc"}, ListParams{Page: 1, Limit: 10, Skip: 0}},
		{"zero limit", map[string]string{"limit": "0"}, ListParams{Page: 1, Limit: 10, Skip: 0}},
		{"negative page", map[string]string{"page": "-2", "limit": "5"}, ListParams{Page: 1, Limit: 5, Skip: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, params, err := BuildListFilter(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, params)
		})
	}
}
