package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shashwat-builds/ecommerce-backend/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Users: registration uniqueness
	{
		CollectionName: usersCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_user_email_unique"),
		},
	},

	// Carts: one cart per user
	{
		CollectionName: cartsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_cart_user_unique"),
		},
	},

	// Orders: per-user order history, newest first
	{
		CollectionName: ordersCollection,
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_user_orders"),
		},
	},

	// Products: category filtering
	{
		CollectionName: productsCollection,
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("idx_product_category"),
		},
	},
}

func EnsureIndexes() error {
	for _, idxConfig := range requiredIndexes {
		collection := GetCollection(idxConfig.CollectionName)
		ctx, cancel := global.GetDefaultTimer()

		indexName, err := collection.Indexes().CreateOne(ctx, idxConfig.IndexModel)
		cancel()
		if err != nil {
			log.Printf("Error creating index on collection %s: %v", idxConfig.CollectionName, err)
			return err
		}

		log.Printf("Created index '%s' on collection '%s'", indexName, idxConfig.CollectionName)
	}
	return nil
}

func EnsureIndexesOnStartup() {
	if err := EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
}
