package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/shashwat-builds/ecommerce-backend/pkg/global"
	"github.com/shashwat-builds/ecommerce-backend/pkg/models"
	"github.com/shashwat-builds/ecommerce-backend/pkg/mongo"
)

// PlaceOrder materializes the caller's cart into a new order: prices are
// resolved from the catalog at this moment, the total is computed once,
// the order is persisted and the cart deleted. Stock is not decremented.
func PlaceOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, global.Error("Unauthorized"))
		return
	}

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Shipping details and payment method are required"))
		return
	}
	if !req.PaymentMethod.Valid() {
		c.JSON(http.StatusBadRequest, global.Error("Invalid payment method"))
		return
	}

	ctx := c.Request.Context()
	cart, err := mongo.GetCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusBadRequest, global.Error("Cart is empty"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}
	if cart.IsEmpty() {
		c.JSON(http.StatusBadRequest, global.Error("Cart is empty"))
		return
	}

	products, err := mongo.GetProductsByIDs(ctx, cart.ProductIDs())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	prices := make(map[bson.ObjectID]float64, len(products))
	for _, item := range cart.Items {
		product, ok := products[item.ProductID]
		if !ok {
			c.JSON(http.StatusNotFound, global.Error("Product no longer available"))
			return
		}
		prices[item.ProductID] = product.Price
	}

	totalAmount := models.OrderTotal(cart.Items, prices)
	order := models.NewOrderFromCart(userID, cart, totalAmount, req.ShippingDetails, req.PaymentMethod)

	if _, err := mongo.CreateOrder(ctx, order); err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	// Sequential, not transactional: a failure here leaves the order in
	// place alongside the stale cart.
	if err := mongo.DeleteCartByUser(ctx, userID); err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders returns the caller's orders, newest first, with each line's
// product resolved to display name and price.
func ListOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, global.Error("Unauthorized"))
		return
	}

	ctx := c.Request.Context()
	orders, err := mongo.GetOrdersByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	var ids []bson.ObjectID
	seen := map[bson.ObjectID]bool{}
	for _, order := range orders {
		for _, item := range order.Items {
			if !seen[item.ProductID] {
				seen[item.ProductID] = true
				ids = append(ids, item.ProductID)
			}
		}
	}

	products, err := mongo.GetProductsByIDs(ctx, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	views := make([]models.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, orders[i].View(products))
	}
	c.JSON(http.StatusOK, views)
}

// GetOrderByID fetches a single order. The id is validated before any
// store access. Ownership is not checked: any authenticated caller can
// read any order by id.
func GetOrderByID(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid Order ID"))
		return
	}

	ctx := c.Request.Context()
	order, err := mongo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	var ids []bson.ObjectID
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := mongo.GetProductsByIDs(ctx, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusOK, order.View(products))
}

// UpdateOrderStatus sets a new order status. Transition legality lives in
// models.StatusTransitionAllowed, which currently accepts every move
// between known statuses.
func UpdateOrderStatus(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid Order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Order status is required"))
		return
	}
	if !req.OrderStatus.Valid() {
		c.JSON(http.StatusBadRequest, global.Error("Invalid order status"))
		return
	}

	ctx := c.Request.Context()
	order, err := mongo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	if !models.StatusTransitionAllowed(order.OrderStatus, req.OrderStatus) {
		c.JSON(http.StatusBadRequest, global.Error("Invalid order status"))
		return
	}

	updated, err := mongo.UpdateOrderStatus(ctx, id, req.OrderStatus)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": updated})
}

// UpdateOrderPayment toggles the payment status. The only modeled move is
// Pending -> Paid; regressing a paid order is rejected.
func UpdateOrderPayment(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid Order ID"))
		return
	}

	var req models.UpdateOrderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Payment status is required"))
		return
	}
	if !req.PaymentStatus.Valid() {
		c.JSON(http.StatusBadRequest, global.Error("Invalid payment status"))
		return
	}

	ctx := c.Request.Context()
	order, err := mongo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	if !models.PaymentTransitionAllowed(order.PaymentStatus, req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, global.Error("Payment status cannot be reverted"))
		return
	}

	updated, err := mongo.UpdateOrderPayment(ctx, id, req.PaymentStatus)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated", "order": updated})
}
