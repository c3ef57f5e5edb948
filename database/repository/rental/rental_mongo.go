package rentalRepo

import (
	"context"
	"fmt"
	"time"

	"vidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRentalRepo implements RentalRepository using MongoDB. It holds both
// the rentals and movies collections because checkout and return write to
// the two of them inside a single transaction.
type MongoRentalRepo struct {
	rentalColl *mongo.Collection
	movieColl  *mongo.Collection
}

// NewMongoRentalRepo creates a new instance of RentalRepository using MongoDB.
func NewMongoRentalRepo(db *mongo.Database) RentalRepository {
	repo := &MongoRentalRepo{
		rentalColl: db.Collection("rentals"),
		movieColl:  db.Collection("movies"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create rental indexes: %v\n", err)
	}
	return repo
}

func (r *MongoRentalRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "customer.id", Value: 1},
			{Key: "movie.id", Value: 1},
			{Key: "date_rental", Value: -1},
		}},
	}

	_, err := r.rentalColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a rental document by ID. Returns nil when no rental matches.
func (r *MongoRentalRepo) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rental models.Rental
	if err := r.rentalColl.FindOne(ctx, bson.M{"id": id}).Decode(&rental); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rental with id %s: %w", id, err)
	}
	return &rental, nil
}

// GetAll retrieves all rentals, most recent first.
func (r *MongoRentalRepo) GetAll(ctx context.Context) ([]models.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date_rental", Value: -1}})
	cursor, err := r.rentalColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rentals: %w", err)
	}
	defer cursor.Close(ctx)

	var rentals []models.Rental
	if err := cursor.All(ctx, &rentals); err != nil {
		return nil, fmt.Errorf("failed to decode rentals: %w", err)
	}
	return rentals, nil
}

// findLatest runs a FindOne for the customer/movie pair with the given
// extra filter, newest rental first.
func (r *MongoRentalRepo) findLatest(ctx context.Context, customerID, movieID string, extra bson.M) (*models.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"customer.id": customerID,
		"movie.id":    movieID,
	}
	for k, v := range extra {
		filter[k] = v
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "date_rental", Value: -1}})
	var rental models.Rental
	if err := r.rentalColl.FindOne(ctx, filter, opts).Decode(&rental); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rental for customer %s, movie %s: %w", customerID, movieID, err)
	}
	return &rental, nil
}

// FindLatestOpen retrieves the newest unreturned rental for the pair.
// A customer can rent the same movie twice; sorting by date_rental makes
// the most recent checkout the one a return closes.
func (r *MongoRentalRepo) FindLatestOpen(ctx context.Context, customerID, movieID string) (*models.Rental, error) {
	return r.findLatest(ctx, customerID, movieID, bson.M{"date_return": nil})
}

// FindLatest retrieves the newest rental for the pair regardless of state.
func (r *MongoRentalRepo) FindLatest(ctx context.Context, customerID, movieID string) (*models.Rental, error) {
	return r.findLatest(ctx, customerID, movieID, nil)
}
