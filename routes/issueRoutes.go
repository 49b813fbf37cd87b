package routes

import (
	"github.com/gin-gonic/gin"

	"vital-be/controllers"
	"vital-be/middlewares"
	"vital-be/models"
)

// IssueRoutes sets up the issue routes. Reporting is public and rate limited per villager.
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController, auth, reportLimit gin.HandlerFunc) {
	issue := r.Group("/api/issues")
	{
		issue.POST("", reportLimit, ic.CreateIssue)
		issue.GET("", auth, ic.GetAllIssues)
		issue.GET("/:id", auth, ic.GetIssue)
		issue.POST("/:id/verify", auth, middlewares.RequireRoles(models.RoleVillageIncharge), ic.VerifyIssue)
		issue.PUT("/:id/assign", auth, middlewares.RequireRoles(models.RolePDO), ic.AssignIssue)
	}
}
