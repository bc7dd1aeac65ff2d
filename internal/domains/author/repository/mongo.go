package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bibliotheque-backend/internal/domains/author/model"
	bookmodel "bibliotheque-backend/internal/domains/book/model"
	"bibliotheque-backend/internal/infrastructure/database"
)

// MongoRepository implements RepositoryInterface on the auteurs collection.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository - Constructor with DI
func NewMongoRepository(db *database.MongoDB) RepositoryInterface {
	return &MongoRepository{
		collection: db.Collection(model.Collection),
	}
}

func (r *MongoRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	authors := []model.Author{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Author, error) {
	var author model.Author
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&author)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrAuthorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *MongoRepository) Insert(ctx context.Context, author *model.Author) (*model.Author, error) {
	result, err := r.collection.InsertOne(ctx, author)
	if err != nil {
		return nil, err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		author.ID = id
	}
	return author, nil
}

func (r *MongoRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.Author, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var author model.Author
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&author)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrAuthorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *MongoRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *MongoRepository) BooksAfter1900(ctx context.Context) ([]model.After1900Stat, error) {
	cursor, err := r.collection.Aggregate(ctx, booksAfter1900Pipeline())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := []model.After1900Stat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// booksAfter1900Pipeline joins each author against the books referencing
// it ($lookup keeps authors with no match, so zero-count authors appear)
// and counts books published after 1900.
func booksAfter1900Pipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: bookmodel.Collection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "auteur"},
			{Key: "as", Value: "livres"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "livres_apres_1900", Value: bson.D{
				{Key: "$size", Value: bson.D{
					{Key: "$filter", Value: bson.D{
						{Key: "input", Value: "$livres"},
						{Key: "as", Value: "livre"},
						{Key: "cond", Value: bson.D{
							{Key: "$gt", Value: bson.A{"$$livre.annee_publication", 1900}},
						}},
					}},
				}},
			}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "nom", Value: 1},
			{Key: "livres_apres_1900", Value: 1},
		}}},
	}
}
