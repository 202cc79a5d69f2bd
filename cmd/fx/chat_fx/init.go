package chat_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

var Module = fx.Provide(
	providePlanProviders,
	provideChatService,
	provideChatController)

// providePlanProviders reads provider keys from the environment. Running with
// no keys at all is supported; the chat service then answers purely from the
// deterministic planner.
func providePlanProviders() []utils.PlanProviderInterface {
	return utils.NewPlanProviders()
}

func provideChatService(providers []utils.PlanProviderInterface, planner services.PlannerServiceInterface) services.ChatServiceInterface {
	return services.NewChatService(providers, planner)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
