package handlers

import (
	"github.com/gin-gonic/gin"

	"hospital-booking-server/internal/middleware"
	"hospital-booking-server/internal/utils"
)

// Home greets the visitor and shows who is logged in, if anyone.
func Home(c *gin.Context) {
	var user *middleware.Identity
	if identity, ok := middleware.IdentityFromContext(c); ok {
		user = identity
	}
	utils.Success(c, "Welcome to the hospital booking service", gin.H{"user": user})
}
