package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the API's status codes.
// Business-rule failures surface their message with a 400; anything
// unclassified is logged and answered with an opaque 500.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User not found"})
	case errors.Is(err, services.ErrMealNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Meal not found"})
	default:
		log.Printf("unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
