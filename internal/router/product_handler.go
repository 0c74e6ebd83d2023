package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/shashwat-builds/ecommerce-backend/pkg/global"
	"github.com/shashwat-builds/ecommerce-backend/pkg/models"
	"github.com/shashwat-builds/ecommerce-backend/pkg/mongo"
	"github.com/shashwat-builds/ecommerce-backend/pkg/redis"
)

func GetAllProducts(c *gin.Context) {
	products, err := mongo.GetAllProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID serves single-product lookups through the Redis
// read-through cache.
func GetProductByID(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid product ID"))
		return
	}

	ctx := c.Request.Context()

	if product, cacheErr := redis.GetProductFromCache(ctx, id.Hex()); cacheErr == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, product)
		return
	}

	product, err := mongo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	if cacheErr := redis.CacheProduct(ctx, product); cacheErr != nil {
		log.Printf("Warning: failed to cache product: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, product)
}

func CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid request data"))
		return
	}

	product, err := mongo.CreateProduct(c.Request.Context(), req.ToProduct())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	if cacheErr := redis.CacheProduct(c.Request.Context(), product); cacheErr != nil {
		log.Printf("Warning: failed to cache product: %v", cacheErr)
	}

	c.JSON(http.StatusCreated, product)
}

func UpdateProductByID(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid product ID"))
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid request data"))
		return
	}

	product, err := mongo.UpdateProductByID(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	// Refresh the cache so stale prices or stock never outlive the write.
	if cacheErr := redis.CacheProduct(c.Request.Context(), product); cacheErr != nil {
		log.Printf("Warning: failed to refresh product cache: %v", cacheErr)
	}

	c.JSON(http.StatusOK, product)
}

func DeleteProductByID(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid product ID"))
		return
	}

	product, err := mongo.DeleteProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusNotFound, global.Error("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	if cacheErr := redis.EvictProduct(c.Request.Context(), product); cacheErr != nil {
		log.Printf("Warning: failed to evict product from cache: %v", cacheErr)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
