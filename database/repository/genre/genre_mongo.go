package genreRepo

import (
	"context"
	"fmt"
	"time"

	"vidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGenreRepo implements GenreRepository using MongoDB.
type MongoGenreRepo struct {
	coll *mongo.Collection
}

// NewMongoGenreRepo creates a new instance of GenreRepository using MongoDB.
func NewMongoGenreRepo(db *mongo.Database) GenreRepository {
	repo := &MongoGenreRepo{coll: db.Collection("genres")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create genre indexes: %v\n", err)
	}
	return repo
}

func (r *MongoGenreRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a genre document by ID. Returns nil when no genre matches.
func (r *MongoGenreRepo) GetByID(ctx context.Context, id string) (*models.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var genre models.Genre
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&genre); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch genre with id %s: %w", id, err)
	}
	return &genre, nil
}

// GetAll retrieves all genres sorted by name.
func (r *MongoGenreRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch genres: %w", err)
	}
	defer cursor.Close(ctx)

	var genres []models.Genre
	if err := cursor.All(ctx, &genres); err != nil {
		return nil, fmt.Errorf("failed to decode genres: %w", err)
	}
	return genres, nil
}

// Create inserts a new genre document.
func (r *MongoGenreRepo) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, genre); err != nil {
		return fmt.Errorf("failed to create genre: %w", err)
	}
	return nil
}

// Update modifies an existing genre document.
func (r *MongoGenreRepo) Update(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": genre.ID}, bson.M{"$set": genre})
	if err != nil {
		return fmt.Errorf("failed to update genre with id %s: %w", genre.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("genre with id %s not found", genre.ID)
	}
	return nil
}

// Delete removes a genre document by its ID.
func (r *MongoGenreRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete genre with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("genre with id %s not found", id)
	}
	return nil
}
