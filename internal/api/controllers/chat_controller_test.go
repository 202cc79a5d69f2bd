package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/response_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

func newChatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	planner := services.NewPlannerService(services.NewCatalogService())
	chat := services.NewChatService(nil, planner)
	controller := NewChatController(chat)

	r := gin.New()
	r.POST("/api/chat", controller.ChatHandler)
	return r
}

func TestChatHandlerWithoutProviders(t *testing.T) {
	r := newChatRouter()

	body := `{
		"messages": [{"role": "user", "content": "make it 5 days"}],
		"context": {"destination": "Paris", "days": 3, "pace": "balanced"}
	}`
	w := postJSON(t, r, "/api/chat", body)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	encoded, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result response_models.ChatResult
	require.NoError(t, json.Unmarshal(encoded, &result))

	assert.True(t, result.AIUnconfigured)
	require.NotNil(t, result.Plan)
	assert.Equal(t, 5, result.Plan.Days)
	assert.Contains(t, result.AssistantMessage, "5 days")
}

func TestChatHandlerRejectsMalformedBody(t *testing.T) {
	r := newChatRouter()

	w := postJSON(t, r, "/api/chat", `{"messages": "nope"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}
