package request_models

import "tripmate/internal/models/response_models"

type SaveTripRequest struct {
	Title string                `json:"title" binding:"required,min=1,max=120"`
	Plan  *response_models.Plan `json:"plan" binding:"required"`
}
