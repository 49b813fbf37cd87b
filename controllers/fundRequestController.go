package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vital-be/dashboard"
	"vital-be/middlewares"
	"vital-be/models"
	"vital-be/services"
)

type FundRequestController struct {
	requests *services.FundRequestService
	logger   *zap.Logger
}

func NewFundRequestController(requests *services.FundRequestService, logger *zap.Logger) *FundRequestController {
	return &FundRequestController{requests: requests, logger: logger}
}

// CreateFundRequest handles a PDO's fund request for an eligible issue
func (fc *FundRequestController) CreateFundRequest(c *gin.Context) {
	var input struct {
		IssueID          string                 `json:"issueId"`
		Amount           int64                  `json:"amount"`
		Reason           string                 `json:"reason"`
		Purpose          string                 `json:"purpose"`
		RequiredTimeline *models.Timeline       `json:"requiredTimeline"`
		BudgetBreakdown  models.BudgetBreakdown `json:"budgetBreakdown"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	fr, err := fc.requests.Create(c.Request.Context(), middlewares.CurrentAuthority(c), services.CreateFundRequestInput{
		IssueID:         input.IssueID,
		Amount:          input.Amount,
		Reason:          input.Reason,
		Purpose:         input.Purpose,
		Timeline:        input.RequiredTimeline,
		BudgetBreakdown: input.BudgetBreakdown,
	})
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}
	c.JSON(http.StatusCreated, fr)
}

// GetFundRequests lists requests in the caller's jurisdiction, filtered and sorted, with counters
func (fc *FundRequestController) GetFundRequests(c *gin.Context) {
	list, err := fc.requests.List(c.Request.Context(), middlewares.CurrentAuthority(c))
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}

	filtered := dashboard.FilterFundRequests(list, c.Query("status"), c.Query("search"))
	sorted := dashboard.SortFundRequests(filtered, dashboard.ParseSortOption(c.Query("sort"), c.Query("order")))
	c.JSON(http.StatusOK, gin.H{
		"fundRequests": sorted,
		"stats":        dashboard.SummarizeFundRequests(list),
	})
}

// GetFundRequest retrieves one request
func (fc *FundRequestController) GetFundRequest(c *gin.Context) {
	fr, err := fc.requests.Get(c.Request.Context(), middlewares.CurrentAuthority(c), c.Param("id"))
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}
	c.JSON(http.StatusOK, fr)
}

// DecideFundRequest records a TDO's approval or rejection
func (fc *FundRequestController) DecideFundRequest(c *gin.Context) {
	var input struct {
		Status  string `json:"status" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	fr, err := fc.requests.Decide(c.Request.Context(), middlewares.CurrentAuthority(c), c.Param("id"), input.Status, input.Comment)
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}
	c.JSON(http.StatusOK, fr)
}
