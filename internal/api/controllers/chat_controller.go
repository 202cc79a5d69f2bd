package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// ChatHandler is the conversational entry point. Past request binding it
// cannot fail: provider outages degrade to the deterministic planner and are
// reported through flags on the result, not as errors.
func (h *ChatController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "messages are required")
		return
	}

	result := h.chatService.Chat(c.Request.Context(), req.Messages, req.Context)
	utils.RespondSuccess(c, result, "Chat processed")
}
