package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vital-be/dashboard"
	"vital-be/middlewares"
	"vital-be/services"
)

type VillagerController struct {
	villagers *services.VillagerService
	logger    *zap.Logger
}

func NewVillagerController(villagers *services.VillagerService, logger *zap.Logger) *VillagerController {
	return &VillagerController{villagers: villagers, logger: logger}
}

// RegisterVillager handles a resident's self-registration
func (vc *VillagerController) RegisterVillager(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required,max=100"`
		Email        string `json:"email" binding:"required,email"`
		Mobile       string `json:"mobile" binding:"required,len=10,numeric"`
		AadhaarLast4 string `json:"aadhaarLast4" binding:"required,len=4,numeric"`
		Village      string `json:"village" binding:"required"`
		PanchayatID  string `json:"panchayatId" binding:"required"`
		TalukID      string `json:"talukId"`
		DistrictID   string `json:"districtId"`
		Taluk        string `json:"taluk"`
		District     string `json:"district"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	villager, err := vc.villagers.Register(c.Request.Context(), services.RegisterVillagerInput{
		Name:         input.Name,
		Email:        input.Email,
		Mobile:       input.Mobile,
		AadhaarLast4: input.AadhaarLast4,
		Village:      input.Village,
		PanchayatID:  input.PanchayatID,
		TalukID:      input.TalukID,
		DistrictID:   input.DistrictID,
		Taluk:        input.Taluk,
		District:     input.District,
	})
	if err != nil {
		respondError(c, vc.logger, err)
		return
	}
	c.JSON(http.StatusCreated, villager)
}

// GetVillagers lists villagers with dashboard counters
func (vc *VillagerController) GetVillagers(c *gin.Context) {
	list, err := vc.villagers.List(c.Request.Context(), middlewares.CurrentAuthority(c))
	if err != nil {
		respondError(c, vc.logger, err)
		return
	}

	filtered := dashboard.SortVillagers(dashboard.FilterVillagers(list, c.Query("status"), c.Query("search")))
	c.JSON(http.StatusOK, gin.H{
		"villagers": filtered,
		"stats":     dashboard.SummarizeVillagers(list),
	})
}

// VerifyVillager activates a pending villager
func (vc *VillagerController) VerifyVillager(c *gin.Context) {
	villager, err := vc.villagers.Verify(c.Request.Context(), middlewares.CurrentAuthority(c), c.Param("id"))
	if err != nil {
		respondError(c, vc.logger, err)
		return
	}
	c.JSON(http.StatusOK, villager)
}

// UpdateVillagerStatus sets a villager's status
func (vc *VillagerController) UpdateVillagerStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	villager, err := vc.villagers.SetStatus(c.Request.Context(), middlewares.CurrentAuthority(c), c.Param("id"), input.Status)
	if err != nil {
		respondError(c, vc.logger, err)
		return
	}
	c.JSON(http.StatusOK, villager)
}
