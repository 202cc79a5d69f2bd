package request_models

type PlanRequest struct {
	Destination string `json:"destination" binding:"required"`
	Days        int    `json:"days"`
	Pace        string `json:"pace"`
	Seed        *int64 `json:"seed"`
}
