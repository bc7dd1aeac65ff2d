package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bibliotheque-backend/internal/domains/book/model"
	"bibliotheque-backend/internal/infrastructure/database"
)

// MongoRepository implements RepositoryInterface on the livres collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository - Constructor with DI
func NewMongoRepository(db *database.MongoDB) RepositoryInterface {
	return &MongoRepository{
		collection: db.Collection(model.Collection),
	}
}

func (r *MongoRepository) Find(ctx context.Context, filter bson.M) ([]model.Book, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	books := []model.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	var book model.Book
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *MongoRepository) Insert(ctx context.Context, book *model.Book) (*model.Book, error) {
	result, err := r.collection.InsertOne(ctx, book)
	if err != nil {
		return nil, err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		book.ID = id
	}
	return book, nil
}

func (r *MongoRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Book, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var book model.Book
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *MongoRepository) CountMatching(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

func (r *MongoRepository) CountPerGenre(ctx context.Context) ([]model.GenreCount, error) {
	cursor, err := r.collection.Aggregate(ctx, countPerGenrePipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	counts := []model.GenreCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// countPerGenrePipeline flattens each book's genre list into single genre
// occurrences, groups and counts them, and sorts by descending count.
func countPerGenrePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$genre"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "titre", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "isbn", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "genre", Value: 1}}},
		{Keys: bson.D{{Key: "auteur", Value: 1}}},
		{Keys: bson.D{{Key: "annee_publication", Value: -1}}},
		{Keys: bson.D{{Key: "disponible", Value: 1}, {Key: "stock", Value: 1}}},
		{
			Keys: bson.D{
				{Key: "titre", Value: "text"},
				{Key: "auteur", Value: "text"},
				{Key: "resume", Value: "text"},
			},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
