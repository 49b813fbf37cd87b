package routes

import (
	"github.com/gin-gonic/gin"

	"vital-be/controllers"
	"vital-be/middlewares"
	"vital-be/models"
)

// VillagerRoutes sets up villager registration and management
func VillagerRoutes(r *gin.Engine, vc *controllers.VillagerController, auth gin.HandlerFunc) {
	villagers := r.Group("/api/villagers")
	{
		villagers.POST("/register", vc.RegisterVillager)

		managers := villagers.Group("", auth, middlewares.RequireRoles(models.RoleVillageIncharge, models.RolePDO))
		managers.GET("", vc.GetVillagers)
		managers.POST("/:id/verify", vc.VerifyVillager)
		managers.PUT("/:id/status", vc.UpdateVillagerStatus)
	}
}
