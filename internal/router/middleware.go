package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/shashwat-builds/ecommerce-backend/pkg/auth"
	"github.com/shashwat-builds/ecommerce-backend/pkg/global"
)

// AuthRequired resolves the bearer token to {user_id, is_admin} and puts
// both on the request context for the handlers.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, global.Error("Authorization header is missing"))
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, global.Error("Authorization header must use the Bearer scheme"))
			return
		}
		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, global.Error("Invalid or expired token"))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, global.Error("Access denied: Admins only"))
			return
		}
		c.Next()
	}
}

// currentUserID reads the authenticated user id set by AuthRequired.
func currentUserID(c *gin.Context) (bson.ObjectID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return bson.ObjectID{}, false
	}
	hex, ok := raw.(string)
	if !ok {
		return bson.ObjectID{}, false
	}
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.ObjectID{}, false
	}
	return id, true
}
