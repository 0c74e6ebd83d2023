package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CartItem is a (product reference, quantity) pair. A cart holds at most
// one item per distinct product.
type CartItem struct {
	ProductID bson.ObjectID `json:"productId" bson:"product_id"`
	Quantity  int           `json:"quantity" bson:"quantity"`
}

// Cart is the per-user working set of items. One cart per user, created
// lazily on the first addition and deleted wholesale when an order is
// placed.
type Cart struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId" bson:"user_id"`
	Items     []CartItem    `json:"items" bson:"items"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

func NewCart(userID bson.ObjectID) *Cart {
	cart := &Cart{
		ID:     bson.NewObjectID(),
		UserID: userID,
		Items:  []CartItem{},
	}
	cart.SetTimestamps()
	return cart
}

// AddItem merges quantity into an existing line for the product, or
// appends a new line. Stock is deliberately not consulted here; carts may
// temporarily exceed available stock and reconciliation happens at
// placement time.
func (c *Cart) AddItem(productID bson.ObjectID, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

// SetQuantity replaces the quantity of an existing line. Returns false if
// no line matches the product.
func (c *Cart) SetQuantity(productID bson.ObjectID, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// HasItem reports whether the cart holds a line for the product.
func (c *Cart) HasItem(productID bson.ObjectID) bool {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// RemoveOne decrements the line for the product by a single unit and
// drops the line when it reaches zero. Returns false if no line matches.
func (c *Cart) RemoveOne(productID bson.ObjectID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if c.Items[i].Quantity > 1 {
			c.Items[i].Quantity--
		} else {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return true
	}
	return false
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ProductIDs returns the distinct product references held by the cart.
func (c *Cart) ProductIDs() []bson.ObjectID {
	ids := make([]bson.ObjectID, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

func (c *Cart) SetTimestamps() {
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemView is a cart line with its product reference resolved to
// display fields. Product is nil when the catalog entry no longer exists.
type CartItemView struct {
	ProductID bson.ObjectID   `json:"productId"`
	Quantity  int             `json:"quantity"`
	Product   *ProductSummary `json:"product,omitempty"`
}

type CartView struct {
	Items     []CartItemView `json:"items"`
	UpdatedAt time.Time      `json:"updatedAt,omitempty"`
}

func (c *Cart) View(products map[bson.ObjectID]Product) CartView {
	view := CartView{Items: make([]CartItemView, 0, len(c.Items)), UpdatedAt: c.UpdatedAt}
	for _, item := range c.Items {
		itemView := CartItemView{ProductID: item.ProductID, Quantity: item.Quantity}
		if product, ok := products[item.ProductID]; ok {
			itemView.Product = product.Summary()
		}
		view.Items = append(view.Items, itemView)
	}
	return view
}

// EmptyCartView is what a user without a cart sees: no error, no items.
func EmptyCartView() CartView {
	return CartView{Items: []CartItemView{}}
}
