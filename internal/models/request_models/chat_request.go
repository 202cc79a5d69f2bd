package request_models

import "tripmate/internal/models/response_models"

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatContext struct {
	Destination      string                `json:"destination"`
	Days             int                   `json:"days"`
	Pace             string                `json:"pace"`
	CurrentItinerary []response_models.Day `json:"currentItinerary,omitempty"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
	Context  ChatContext   `json:"context"`
}
