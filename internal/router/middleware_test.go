package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/shashwat-builds/ecommerce-backend/pkg/auth"
)

func protectedEngine(adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthRequired()}
	if adminOnly {
		handlers = append(handlers, AdminRequired())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("user_id")})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedEngine(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedEngine(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsMissingBearerScheme(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedEngine(false)

	token, err := auth.GenerateToken(bson.NewObjectID().Hex(), false)
	require.NoError(t, err)

	// A valid token sent without the scheme prefix is not a bearer
	// credential.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Bearer")
}

func TestAuthRequiredValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedEngine(false)

	userID := bson.NewObjectID().Hex()
	token, err := auth.GenerateToken(userID, false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID)
}

func TestAdminRequiredRejectsNonAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedEngine(true)

	token, err := auth.GenerateToken(bson.NewObjectID().Hex(), false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedEngine(true)

	token, err := auth.GenerateToken(bson.NewObjectID().Hex(), true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
