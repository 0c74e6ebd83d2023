package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/shashwat-builds/ecommerce-backend/pkg/models"
)

const usersCollection = "users"

// CreateUser inserts a new user. The unique index on email turns a
// duplicate registration into ErrDuplicateEmail.
func CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	result, err := GetCollection(usersCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}

func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := GetCollection(usersCollection).FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
