package response_models

type ChatResult struct {
	Plan             *Plan  `json:"plan"`
	AssistantMessage string `json:"assistantMessage"`
	AIUnconfigured   bool   `json:"aiUnconfigured,omitempty"`
	AgentUnavailable bool   `json:"agentUnavailable,omitempty"`
}
