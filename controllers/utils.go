package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zarjin/FaceBook-Clone/log"
	"github.com/zarjin/FaceBook-Clone/middlewares"
	"github.com/zarjin/FaceBook-Clone/services"
	"github.com/zarjin/FaceBook-Clone/store"
)

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 10*time.Second)
}

// currentUserID reads the user id that RequireAuth bound into the context.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(middlewares.UserIDKey)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

// respondError maps a service failure onto a status code and a {message}
// body. Internal detail goes to the log, never to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
	case errors.Is(err, store.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		log.Error.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
