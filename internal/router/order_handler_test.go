package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// These tests exercise the validation paths that must reject a request
// before any store access happens; no database is running behind them.

func TestGetOrderByIDMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/:id", GetOrderByID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-hex-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Order ID")
}

func TestPlaceOrderMissingShippingDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", bson.NewObjectID().Hex()) })
	r.POST("/orders", PlaceOrder)

	body := `{"paymentMethod":"Card"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderEmptyContact(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", bson.NewObjectID().Hex()) })
	r.POST("/orders", PlaceOrder)

	body := `{"shippingDetails":{"address":"1 Main St","contact":""},"paymentMethod":"Card"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderInvalidPaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", bson.NewObjectID().Hex()) })
	r.POST("/orders", PlaceOrder)

	body := `{"shippingDetails":{"address":"1 Main St","contact":"555-0101"},"paymentMethod":"Barter"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment method")
}

func TestPlaceOrderUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders", PlaceOrder)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateOrderStatusMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/orders/:id/status", UpdateOrderStatus)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/xyz/status", strings.NewReader(`{"orderStatus":"Shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusUnknownValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/orders/:id/status", UpdateOrderStatus)

	body := `{"orderStatus":"Teleported"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/"+bson.NewObjectID().Hex()+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid order status")
}

func TestUpdateOrderPaymentUnknownValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/orders/:id/payment", UpdateOrderPayment)

	body := `{"paymentStatus":"Refunded"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/orders/"+bson.NewObjectID().Hex()+"/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid payment status")
}
