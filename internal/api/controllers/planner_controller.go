package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{plannerService: plannerService}
}

// CreatePlanHandler is the deterministic planning entry point. A missing
// destination is the one rejected input; days and pace default instead of
// erroring.
func (p *PlannerController) CreatePlanHandler(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	plan := p.plannerService.BuildPlan(req.Destination, req.Days, req.Pace, req.Seed)
	utils.RespondSuccess(c, plan, "Itinerary generated")
}
