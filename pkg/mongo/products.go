package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/shashwat-builds/ecommerce-backend/pkg/models"
)

const productsCollection = "products"

func CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if _, err := GetCollection(productsCollection).InsertOne(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func GetAllProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := GetCollection(productsCollection).Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func GetProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	var product models.Product
	err := GetCollection(productsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetProductsByIDs resolves a set of product references in one query.
// References that no longer exist are simply absent from the result.
func GetProductsByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]models.Product, error) {
	resolved := make(map[bson.ObjectID]models.Product, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	cursor, err := GetCollection(productsCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for _, product := range products {
		resolved[product.ID] = product
	}
	return resolved, nil
}

func UpdateProductByID(ctx context.Context, id bson.ObjectID, req *models.CreateProductRequest) (*models.Product, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: req.Name},
		{Key: "description", Value: req.Description},
		{Key: "price", Value: req.Price},
		{Key: "images", Value: req.Images},
		{Key: "category", Value: req.Category},
		{Key: "stock", Value: req.Stock},
		{Key: "updated_at", Value: time.Now()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err := GetCollection(productsCollection).
		FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).
		Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// DeleteProductByID removes the product and returns the deleted document
// so the cache entry can be evicted as well.
func DeleteProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	var product models.Product
	err := GetCollection(productsCollection).
		FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}
