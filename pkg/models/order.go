package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"

	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"

	PaymentMethodCard    PaymentMethod = "Card"
	PaymentMethodUPI     PaymentMethod = "UPI"
	PaymentMethodCOD     PaymentMethod = "COD"
	PaymentMethodGateway PaymentMethod = "Gateway"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodCOD, PaymentMethodGateway:
		return true
	}
	return false
}

// StatusTransitionAllowed is the single place transition legality is
// decided. Every transition between known statuses is currently accepted;
// admins may move an order to any status regardless of its current one.
func StatusTransitionAllowed(from, to OrderStatus) bool {
	return from.Valid() && to.Valid()
}

// PaymentTransitionAllowed permits only the forward Pending -> Paid move
// (setting the current value again is a no-op, not a violation).
func PaymentTransitionAllowed(from, to PaymentStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	return !(from == PaymentStatusPaid && to == PaymentStatusPending)
}

type ShippingDetails struct {
	Address string `json:"address" bson:"address" binding:"required"`
	Contact string `json:"contact" bson:"contact" binding:"required"`
}

// OrderItem is a cart line frozen at placement time. It carries no price;
// pricing lives only in the order's aggregate total.
type OrderItem struct {
	ProductID bson.ObjectID `json:"productId" bson:"product_id"`
	Quantity  int           `json:"quantity" bson:"quantity"`
}

// Order is an immutable snapshot of a materialized cart. Only OrderStatus
// and PaymentStatus change after creation.
type Order struct {
	ID              bson.ObjectID   `json:"id" bson:"_id,omitempty"`
	UserID          bson.ObjectID   `json:"userId" bson:"user_id"`
	Items           []OrderItem     `json:"items" bson:"items"`
	TotalAmount     float64         `json:"totalAmount" bson:"total_amount"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus" bson:"payment_status"`
	OrderStatus     OrderStatus     `json:"orderStatus" bson:"order_status"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod" bson:"payment_method"`
	ShippingDetails ShippingDetails `json:"shippingDetails" bson:"shipping_details"`
	CreatedAt       time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updated_at"`
}

// OrderTotal sums current price x quantity over the cart's lines. Prices
// are the catalog prices at placement time, so changes made after an item
// was added to the cart are reflected here.
func OrderTotal(items []CartItem, prices map[bson.ObjectID]float64) float64 {
	var total float64
	for _, item := range items {
		total += prices[item.ProductID] * float64(item.Quantity)
	}
	return total
}

// NewOrderFromCart freezes the cart's lines into a new pending order.
func NewOrderFromCart(userID bson.ObjectID, cart *Cart, totalAmount float64, shipping ShippingDetails, method PaymentMethod) *Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order := &Order{
		ID:              bson.NewObjectID(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     totalAmount,
		PaymentStatus:   PaymentStatusPending,
		OrderStatus:     OrderStatusPending,
		PaymentMethod:   method,
		ShippingDetails: shipping,
	}
	order.SetTimestamps()
	return order
}

func (o *Order) SetTimestamps() {
	now := time.Now()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
}

type PlaceOrderRequest struct {
	ShippingDetails ShippingDetails `json:"shippingDetails" binding:"required"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus OrderStatus `json:"orderStatus" binding:"required"`
}

type UpdateOrderPaymentRequest struct {
	PaymentStatus PaymentStatus `json:"paymentStatus" binding:"required"`
}

// OrderItemView is an order line with name and price resolved from the
// current catalog for display.
type OrderItemView struct {
	ProductID bson.ObjectID `json:"productId"`
	Quantity  int           `json:"quantity"`
	Name      string        `json:"name,omitempty"`
	Price     float64       `json:"price,omitempty"`
}

type OrderView struct {
	Order
	Items []OrderItemView `json:"items"`
}

func (o *Order) View(products map[bson.ObjectID]Product) OrderView {
	view := OrderView{Order: *o, Items: make([]OrderItemView, 0, len(o.Items))}
	for _, item := range o.Items {
		itemView := OrderItemView{ProductID: item.ProductID, Quantity: item.Quantity}
		if product, ok := products[item.ProductID]; ok {
			itemView.Name = product.Name
			itemView.Price = product.Price
		}
		view.Items = append(view.Items, itemView)
	}
	return view
}
