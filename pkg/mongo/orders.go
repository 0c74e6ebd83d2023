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

const ordersCollection = "orders"

func CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	result, err := GetCollection(ordersCollection).InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	if id, ok := result.InsertedID.(bson.ObjectID); ok {
		order.ID = id
	}
	return order, nil
}

func GetOrderByID(ctx context.Context, id bson.ObjectID) (*models.Order, error) {
	var order models.Order
	err := GetCollection(ordersCollection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func GetOrdersByUser(ctx context.Context, userID bson.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := GetCollection(ordersCollection).Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus mutates only the status overlay of an order; the
// snapshot fields never change after creation.
func UpdateOrderStatus(ctx context.Context, id bson.ObjectID, status models.OrderStatus) (*models.Order, error) {
	return updateOrderField(ctx, id, "order_status", status)
}

func UpdateOrderPayment(ctx context.Context, id bson.ObjectID, status models.PaymentStatus) (*models.Order, error) {
	return updateOrderField(ctx, id, "payment_status", status)
}

func updateOrderField(ctx context.Context, id bson.ObjectID, field string, value interface{}) (*models.Order, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: field, Value: value},
		{Key: "updated_at", Value: time.Now()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var order models.Order
	err := GetCollection(ordersCollection).
		FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).
		Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}
