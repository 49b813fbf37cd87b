package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"vital-be/dashboard"
	"vital-be/middlewares"
	"vital-be/models"
	"vital-be/services"
)

type IssueController struct {
	issues *services.IssueService
	logger *zap.Logger
}

func NewIssueController(issues *services.IssueService, logger *zap.Logger) *IssueController {
	return &IssueController{issues: issues, logger: logger}
}

// CreateIssue handles a villager's issue report
func (ic *IssueController) CreateIssue(c *gin.Context) {
	var input struct {
		VillagerID       string `json:"villagerId" binding:"required"`
		Title            string `json:"title" binding:"required,max=200"`
		CategoryName     string `json:"categoryName" binding:"required"`
		Description      string `json:"description" binding:"max=1000"`
		Priority         string `json:"priority"`
		SpecificLocation string `json:"specificLocation" binding:"max=200"`
	}
	// the rate limiter may already have read the body
	if err := c.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		bindError(c, err)
		return
	}

	issue, err := ic.issues.Report(c.Request.Context(), services.ReportIssueInput{
		VillagerID:       input.VillagerID,
		Title:            input.Title,
		CategoryName:     input.CategoryName,
		Description:      input.Description,
		Priority:         input.Priority,
		SpecificLocation: input.SpecificLocation,
	})
	if err != nil {
		respondError(c, ic.logger, err)
		return
	}

	c.JSON(http.StatusCreated, issue)
}

// GetAllIssues lists issues in the caller's jurisdiction with funding eligibility
func (ic *IssueController) GetAllIssues(c *gin.Context) {
	eligibleOnly, _ := strconv.ParseBool(c.DefaultQuery("eligible", "false"))

	views, err := ic.issues.List(c.Request.Context(), middlewares.CurrentAuthority(c), eligibleOnly)
	if err != nil {
		respondError(c, ic.logger, err)
		return
	}

	issues := make([]models.Issue, len(views))
	eligible := make(map[string]bool, len(views))
	for i, v := range views {
		issues[i] = v.Issue
		eligible[v.ID] = v.Eligible
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      views,
		"totalIssues": len(views),
		"stats": dashboard.SummarizeIssues(issues, func(issue *models.Issue) bool {
			return eligible[issue.ID]
		}),
	})
}

// GetIssue retrieves an issue by its ID with funding state
func (ic *IssueController) GetIssue(c *gin.Context) {
	view, err := ic.issues.Get(c.Request.Context(), middlewares.CurrentAuthority(c), c.Param("id"))
	if err != nil {
		respondError(c, ic.logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// VerifyIssue records the village incharge's verification
func (ic *IssueController) VerifyIssue(c *gin.Context) {
	issue, err := ic.issues.Verify(c.Request.Context(), middlewares.CurrentAuthority(c), c.Param("id"))
	if err != nil {
		respondError(c, ic.logger, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// AssignIssue routes an issue to a department
func (ic *IssueController) AssignIssue(c *gin.Context) {
	var input struct {
		Department string `json:"department" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	issue, err := ic.issues.AssignDepartment(c.Request.Context(), middlewares.CurrentAuthority(c), c.Param("id"), input.Department)
	if err != nil {
		respondError(c, ic.logger, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}
