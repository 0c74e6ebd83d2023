package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestOrderTotal(t *testing.T) {
	p1 := bson.NewObjectID()
	p2 := bson.NewObjectID()
	items := []CartItem{
		{ProductID: p1, Quantity: 2},
		{ProductID: p2, Quantity: 3},
	}
	prices := map[bson.ObjectID]float64{p1: 10, p2: 5}

	assert.InDelta(t, 35.0, OrderTotal(items, prices), 1e-9)
}

func TestOrderTotalUsesPlacementTimePrices(t *testing.T) {
	p1 := bson.NewObjectID()
	items := []CartItem{{ProductID: p1, Quantity: 2}}

	// Price changed after the item was added to the cart; the later
	// price is the one the order records.
	assert.InDelta(t, 20.0, OrderTotal(items, map[bson.ObjectID]float64{p1: 10}), 1e-9)
	assert.InDelta(t, 24.0, OrderTotal(items, map[bson.ObjectID]float64{p1: 12}), 1e-9)
}

func TestOrderTotalEmptyCart(t *testing.T) {
	assert.Zero(t, OrderTotal(nil, nil))
}

func TestNewOrderFromCart(t *testing.T) {
	userID := bson.NewObjectID()
	p1 := bson.NewObjectID()
	p2 := bson.NewObjectID()
	cart := NewCart(userID)
	cart.AddItem(p1, 2)
	cart.AddItem(p2, 3)

	shipping := ShippingDetails{Address: "221B Baker Street", Contact: "555-0101"}
	order := NewOrderFromCart(userID, cart, 35, shipping, PaymentMethodCard)

	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, OrderStatusPending, order.OrderStatus)
	assert.Equal(t, PaymentMethodCard, order.PaymentMethod)
	assert.Equal(t, shipping, order.ShippingDetails)
	assert.InDelta(t, 35.0, order.TotalAmount, 1e-9)
	assert.False(t, order.CreatedAt.IsZero())
	assert.False(t, order.UpdatedAt.IsZero())

	// Lines are frozen copies of the cart lines, product and quantity only.
	require.Len(t, order.Items, 2)
	assert.Equal(t, OrderItem{ProductID: p1, Quantity: 2}, order.Items[0])
	assert.Equal(t, OrderItem{ProductID: p2, Quantity: 3}, order.Items[1])

	// Mutating the cart afterwards must not touch the order snapshot.
	cart.AddItem(p1, 10)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestStatusTransitionAllowedIsPermissive(t *testing.T) {
	statuses := []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	}
	for _, from := range statuses {
		for _, to := range statuses {
			assert.True(t, StatusTransitionAllowed(from, to), "%s -> %s", from, to)
		}
	}
	assert.False(t, StatusTransitionAllowed(OrderStatusPending, OrderStatus("Lost")))
	assert.False(t, StatusTransitionAllowed(OrderStatus(""), OrderStatusPending))
}

func TestPaymentTransitionAllowed(t *testing.T) {
	assert.True(t, PaymentTransitionAllowed(PaymentStatusPending, PaymentStatusPaid))
	assert.True(t, PaymentTransitionAllowed(PaymentStatusPaid, PaymentStatusPaid))
	assert.True(t, PaymentTransitionAllowed(PaymentStatusPending, PaymentStatusPending))
	assert.False(t, PaymentTransitionAllowed(PaymentStatusPaid, PaymentStatusPending))
	assert.False(t, PaymentTransitionAllowed(PaymentStatusPending, PaymentStatus("Refunded")))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, OrderStatusShipped.Valid())
	assert.False(t, OrderStatus("shipped").Valid())

	assert.True(t, PaymentStatusPaid.Valid())
	assert.False(t, PaymentStatus("Failed").Valid())

	for _, m := range []PaymentMethod{PaymentMethodCard, PaymentMethodUPI, PaymentMethodCOD, PaymentMethodGateway} {
		assert.True(t, m.Valid())
	}
	assert.False(t, PaymentMethod("Cheque").Valid())
}

func TestOrderViewResolvesNameAndPrice(t *testing.T) {
	p1 := bson.NewObjectID()
	order := Order{
		ID:    bson.NewObjectID(),
		Items: []OrderItem{{ProductID: p1, Quantity: 2}},
	}

	view := order.View(map[bson.ObjectID]Product{p1: {ID: p1, Name: "Mug", Price: 9.5}})
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Mug", view.Items[0].Name)
	assert.Equal(t, 9.5, view.Items[0].Price)
	assert.Equal(t, 2, view.Items[0].Quantity)
}
