package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shashwat-builds/ecommerce-backend/pkg/auth"
	"github.com/shashwat-builds/ecommerce-backend/pkg/global"
	"github.com/shashwat-builds/ecommerce-backend/pkg/models"
	"github.com/shashwat-builds/ecommerce-backend/pkg/mongo"
)

func HealthCheck(c *gin.Context) {
	if err := mongo.Client().Ping(c.Request.Context(), nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Database connection failed"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK", "database": "Connected"})
}

func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid request data"))
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Failed to process password"))
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		IsAdmin:  req.IsAdmin,
	}
	user.SetTimestamps()

	if _, err := mongo.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, mongo.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, global.Error("User already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.Error("Invalid request data"))
		return
	}

	user, err := mongo.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNotFound) {
			c.JSON(http.StatusBadRequest, global.Error("Invalid credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusBadRequest, global.Error("Invalid credentials"))
		return
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.Error("Server error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "isAdmin": user.IsAdmin})
}
