package routes

import (
	"github.com/gin-gonic/gin"

	"vital-be/controllers"
	"vital-be/middlewares"
	"vital-be/models"
)

// AuthRoutes sets up the authentication and authority administration routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, auth gin.HandlerFunc) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", ac.Register)
		authGroup.POST("/login", ac.Login)
		authGroup.POST("/logout", ac.Logout)
		authGroup.GET("/me", auth, ac.Me)
	}

	admin := r.Group("/api/admin", auth, middlewares.RequireRoles(models.RoleAdmin))
	{
		admin.POST("/authorities/:id/verify", ac.VerifyAuthority)
	}
}
