package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripmate/cmd/fx/account_fx"
	"tripmate/cmd/fx/chat_fx"
	"tripmate/cmd/fx/db_fx"
	"tripmate/cmd/fx/planner_fx"
	"tripmate/cmd/fx/trips_fx"
	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		planner_fx.Module,
		chat_fx.Module,
		account_fx.Module,
		trips_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	chatController *controllers.ChatController,
	accountController *controllers.AccountController,
	tripsController *controllers.TripsController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, plannerController, chatController, accountController, tripsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	chatController *controllers.ChatController,
	accountController *controllers.AccountController,
	tripsController *controllers.TripsController) {

	api := r.Group("/api")
	api.POST("/itinerary", plannerController.CreatePlanHandler)
	api.POST("/chat", chatController.ChatHandler)

	auth := r.Group("/auth")
	auth.POST("/signup", accountController.SignUpHandler)
	auth.POST("/login", accountController.LoginHandler)

	trips := r.Group("/trips")
	trips.Use(middleware.JWTAuthMiddleware())
	trips.POST("", tripsController.SaveTripHandler)
	trips.GET("", tripsController.ListTripsHandler)
	trips.GET("/:id", tripsController.GetTripHandler)
	trips.DELETE("/:id", tripsController.DeleteTripHandler)
}
