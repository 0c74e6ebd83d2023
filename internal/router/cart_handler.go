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

// GetCart returns the caller's cart with product references resolved to
// display fields. A user without a cart gets an empty item list, not an
// error.
func GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, global.Error("Unauthorized"))
		return
	}

	ctx := c.Request.Context()
	cart, err := mongo.GetCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusOK, models.EmptyCartView())
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	products, err := mongo.GetProductsByIDs(ctx, cart.ProductIDs())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusOK, cart.View(products))
}

// AddToCart appends a line or merges quantity into an existing one. Stock
// is not checked here: placement-time reconciliation governs.
func AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, global.Error("Unauthorized"))
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid request data"))
		return
	}

	productID, err := bson.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid product ID"))
		return
	}

	ctx := c.Request.Context()
	if _, err := mongo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	cart, err := mongo.GetCartByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, global.Error("Server error"))
			return
		}
		cart = models.NewCart(userID)
	}

	cart.AddItem(productID, req.Quantity)

	if err := mongo.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusOK, cart)
}

// UpdateCartItem replaces a line's quantity. Unlike add, this enforces
// the product's current stock.
func UpdateCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, global.Error("Unauthorized"))
		return
	}

	productID, err := bson.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid product ID"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid request data"))
		return
	}

	ctx := c.Request.Context()
	cart, err := mongo.GetCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Cart not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	if !cart.HasItem(productID) {
		c.JSON(http.StatusNotFound, global.Error("Item not found in cart"))
		return
	}

	product, err := mongo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	// Validated against live stock before any mutation; on failure the
	// cart is left untouched.
	if req.Quantity > product.Stock {
		c.JSON(http.StatusBadRequest, global.Error("Not enough stock available"))
		return
	}

	cart.SetQuantity(productID, req.Quantity)

	if err := mongo.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusOK, cart)
}

// RemoveCartItem removes a single unit; the line disappears when it hits
// zero, but the cart document itself stays.
func RemoveCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, global.Error("Unauthorized"))
		return
	}

	productID, err := bson.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid product ID"))
		return
	}

	ctx := c.Request.Context()
	cart, err := mongo.GetCartByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Cart not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	if !cart.RemoveOne(productID) {
		c.JSON(http.StatusNotFound, global.Error("Item not found in cart"))
		return
	}

	if err := mongo.SaveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "One unit removed from cart", "cart": cart})
}
