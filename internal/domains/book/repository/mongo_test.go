package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCountPerGenrePipeline(t *testing.T) {
	pipeline := countPerGenrePipeline()
	require.Len(t, pipeline, 3)

	unwind := pipeline[0]
	assert.Equal(t, "$unwind", unwind[0].Key)
	assert.Equal(t, "$genre", unwind[0].Value)

	group := pipeline[1]
	assert.Equal(t, "$group", group[0].Key)
	groupDoc, ok := group[0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "_id", groupDoc[0].Key)
	assert.Equal(t, "$genre", groupDoc[0].Value)
	assert.Equal(t, "count", groupDoc[1].Key)
	assert.Equal(t, bson.D{{Key: "$sum", Value: 1}}, groupDoc[1].Value)

	// most represented genre first
	sort := pipeline[2]
	assert.Equal(t, "$sort", sort[0].Key)
	assert.Equal(t, bson.D{{Key: "count", Value: -1}}, sort[0].Value)
}
