package router

import (
	"github.com/gin-gonic/gin"

	"forkful/internal/config"
	"forkful/internal/handler"
	"forkful/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	recipeH *handler.RecipeHandler,
	importH *handler.ImportHandler,
	listH *handler.ShoppingListHandler,
	planH *handler.MealPlanHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Recipe routes
	recipes := v1.Group("/recipes")
	recipes.POST("", recipeH.Create)
	recipes.GET("", recipeH.List)
	recipes.GET("/export", recipeH.ExportCSV)
	recipes.GET("/:id", recipeH.GetByID)
	recipes.PATCH("/:id", recipeH.Update)
	recipes.PUT("/:id/favorite", recipeH.SetFavorite)
	recipes.DELETE("/:id", recipeH.Delete)

	// Import pipeline routes
	imports := v1.Group("/imports")
	imports.POST("/url", importH.ImportURL)
	imports.POST("/document", importH.ImportDocument)
	imports.GET("", importH.List)
	imports.GET("/:id", importH.GetByID)

	// Shopping list routes
	lists := v1.Group("/shopping-lists")
	lists.POST("", listH.Create)
	lists.GET("", listH.List)
	lists.GET("/:id", listH.GetByID)
	lists.GET("/:id/export", listH.ExportXLSX)
	lists.PUT("/:id/items/:itemID/checked", listH.SetItemChecked)
	lists.DELETE("/:id", listH.Delete)

	// Meal plan routes
	plans := v1.Group("/meal-plans")
	plans.POST("", planH.Create)
	plans.GET("", planH.List)
	plans.GET("/:id", planH.GetByID)
	plans.POST("/:id/entries", planH.AddEntry)
	plans.DELETE("/:id/entries/:entryID", planH.RemoveEntry)
	plans.DELETE("/:id", planH.Delete)

	return r
}
