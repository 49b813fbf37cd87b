package routes

import (
	"github.com/gin-gonic/gin"

	"vital-be/controllers"
	"vital-be/middlewares"
	"vital-be/models"
)

// FundRequestRoutes sets up the fund request workflow routes
func FundRequestRoutes(r *gin.Engine, fc *controllers.FundRequestController, auth, createLimit gin.HandlerFunc) {
	requests := r.Group("/api/fund-requests", auth)
	{
		requests.POST("", middlewares.RequireRoles(models.RolePDO), createLimit, fc.CreateFundRequest)
		requests.GET("", middlewares.RequireRoles(models.RolePDO, models.RoleTDO, models.RoleDDO, models.RoleAdmin), fc.GetFundRequests)
		requests.GET("/:id", fc.GetFundRequest)
		requests.POST("/:id/decision", middlewares.RequireRoles(models.RoleTDO), fc.DecideFundRequest)
	}
}
