package rentalRepo

import (
	"context"
	"fmt"
	"time"

	"vidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// withTransaction runs fn inside a MongoDB session transaction, aborting
// on any error. Sentinel errors (ErrNoStock, ErrAlreadyReturned) pass
// through unwrapped so callers can match on them.
func (r *MongoRentalRepo) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	client := r.rentalColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// CreateWithStockDecrement inserts the rental and takes one copy off the
// shelf as a single transaction. The decrement is conditioned on
// number_in_stock > 0 at write time, so of two checkouts racing for the
// last copy exactly one commits; the other aborts with ErrNoStock and its
// rental insert is rolled back with it.
func (r *MongoRentalRepo) CreateWithStockDecrement(ctx context.Context, rental *models.Rental) error {
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		if _, err := r.rentalColl.InsertOne(sc, rental); err != nil {
			return fmt.Errorf("insert rental failed: %w", err)
		}

		filter := bson.M{
			"id":              rental.Movie.ID,
			"number_in_stock": bson.M{"$gt": 0},
		}
		update := bson.M{"$inc": bson.M{"number_in_stock": -1}}

		res, err := r.movieColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("decrement stock failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrNoStock
		}
		return nil
	})
}

// CloseWithStockIncrement marks the rental returned and puts the copy back
// on the shelf as a single transaction. The rental update is guarded by
// date_return == null; a duplicate return matches nothing, aborts with
// ErrAlreadyReturned, and leaves the stock counter alone.
func (r *MongoRentalRepo) CloseWithStockIncrement(ctx context.Context, rentalID, movieID string, dateReturn time.Time, fee float64) error {
	return r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id":          rentalID,
			"date_return": nil,
		}
		update := bson.M{"$set": bson.M{
			"date_return": dateReturn,
			"rental_fee":  fee,
		}}

		res, err := r.rentalColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("close rental failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrAlreadyReturned
		}

		if _, err := r.movieColl.UpdateOne(sc,
			bson.M{"id": movieID},
			bson.M{"$inc": bson.M{"number_in_stock": 1}},
		); err != nil {
			return fmt.Errorf("increment stock failed: %w", err)
		}
		return nil
	})
}
