package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var Router *gin.Engine

func InitEngine() {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	Router = gin.Default()

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", Register)
			authGroup.POST("/login", Login)
		}

		products := api.Group("/products")
		{
			products.GET("", GetAllProducts)
			products.GET("/:id", GetProductByID)
			products.POST("", AuthRequired(), AdminRequired(), CreateProduct)
			products.PUT("/:id", AuthRequired(), AdminRequired(), UpdateProductByID)
			products.DELETE("/:id", AuthRequired(), AdminRequired(), DeleteProductByID)
		}

		cart := api.Group("/cart")
		cart.Use(AuthRequired())
		{
			cart.GET("", GetCart)
			cart.POST("", AddToCart)
			cart.PUT("/:productId", UpdateCartItem)
			cart.DELETE("/:productId", RemoveCartItem)
		}

		orders := api.Group("/orders")
		orders.Use(AuthRequired())
		{
			orders.POST("", PlaceOrder)
			orders.GET("", ListOrders)
			orders.GET("/:id", GetOrderByID)
			orders.PUT("/:id/status", AdminRequired(), UpdateOrderStatus)
			orders.PUT("/:id/payment", AdminRequired(), UpdateOrderPayment)
		}
	}
}
