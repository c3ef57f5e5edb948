package movieRepo

import (
	"context"
	"fmt"
	"time"

	"vidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMovieRepo implements MovieRepository using MongoDB.
type MongoMovieRepo struct {
	coll *mongo.Collection
}

// NewMongoMovieRepo creates a new instance of MovieRepository using MongoDB.
func NewMongoMovieRepo(db *mongo.Database) MovieRepository {
	repo := &MongoMovieRepo{coll: db.Collection("movies")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create movie indexes: %v\n", err)
	}
	return repo
}

func (r *MongoMovieRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "genre.id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a movie document by ID. Returns nil when no movie matches.
func (r *MongoMovieRepo) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var movie models.Movie
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&movie); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch movie with id %s: %w", id, err)
	}
	return &movie, nil
}

// GetAll retrieves all movies sorted by title.
func (r *MongoMovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movies: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	return movies, nil
}

// Create inserts a new movie document.
func (r *MongoMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, movie); err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// UpdateDetails modifies an existing movie document without touching the
// stock counter.
func (r *MongoMovieRepo) UpdateDetails(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":             movie.Title,
		"genre":             movie.Genre,
		"daily_rental_rate": movie.DailyRentalRate,
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": movie.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update movie with id %s: %w", movie.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("movie with id %s not found", movie.ID)
	}
	return nil
}

// Delete removes a movie document by its ID.
func (r *MongoMovieRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete movie with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("movie with id %s not found", id)
	}
	return nil
}
