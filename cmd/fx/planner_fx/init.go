package planner_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideCatalogService,
	providePlannerService,
	providePlannerController)

func provideCatalogService() services.CatalogServiceInterface {
	return services.NewCatalogService()
}

func providePlannerService(catalog services.CatalogServiceInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(catalog)
}

func providePlannerController(planner services.PlannerServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(planner)
}
