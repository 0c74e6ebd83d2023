package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shashwat-builds/ecommerce-backend/pkg/models"
)

const cartsCollection = "carts"

// GetCartByUser returns the user's cart, or ErrNotFound when none exists
// yet. Absence is a normal state: carts are created lazily on the first
// addition.
func GetCartByUser(ctx context.Context, userID bson.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := GetCollection(cartsCollection).FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// SaveCart persists the whole cart document, creating it when absent. The
// unique index on user_id keeps it one cart per user.
func SaveCart(ctx context.Context, cart *models.Cart) error {
	cart.SetTimestamps()
	filter := bson.D{{Key: "user_id", Value: cart.UserID}}
	opts := options.Replace().SetUpsert(true)
	_, err := GetCollection(cartsCollection).ReplaceOne(ctx, filter, cart, opts)
	return err
}

// DeleteCartByUser removes the cart document entirely; the next fetch
// sees an empty cart and the next addition creates a fresh one.
func DeleteCartByUser(ctx context.Context, userID bson.ObjectID) error {
	_, err := GetCollection(cartsCollection).DeleteOne(ctx, bson.D{{Key: "user_id", Value: userID}})
	return err
}
