package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"carcatalog-api/config"
	"carcatalog-api/controllers"
	"carcatalog-api/middleware"
	"carcatalog-api/repositories"
	"carcatalog-api/services"
)

// SetupRoutes wires repositories, services and controllers and
// registers the API. Reads are public; writes require a bearer token.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	// Repositories
	makeRepo := repositories.NewMakeRepository(db)
	modelRepo := repositories.NewModelRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	carRepo := repositories.NewCarRepository(db)

	// Services
	makeService := services.NewMakeService(makeRepo, logger)
	modelService := services.NewModelService(modelRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	carService := services.NewCarService(carRepo, makeService, modelService, categoryService, logger)

	// Controllers
	carController := controllers.NewCarController(carService)
	makeController := controllers.NewMakeController(makeService, carService)
	modelController := controllers.NewModelController(modelService, carService)
	categoryController := controllers.NewCategoryController(categoryService, carService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Public read endpoints
	{
		v1.GET("/cars", carController.GetCars)
		v1.GET("/cars/:id", carController.GetCar)

		v1.GET("/makes", makeController.GetMakes)
		v1.GET("/makes/:id", makeController.GetMake)

		v1.GET("/models", modelController.GetModels)
		v1.GET("/models/:id", modelController.GetModel)

		v1.GET("/categories", categoryController.GetCategories)
		v1.GET("/categories/:id", categoryController.GetCategory)
	}

	// Write endpoints behind bearer auth
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(middleware.AuthConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	}, logger))
	{
		protected.POST("/cars", carController.CreateCar)
		protected.PUT("/cars/:id", carController.UpdateCar)
		protected.DELETE("/cars/:id", carController.DeleteCar)

		protected.POST("/makes", makeController.CreateMake)
		protected.PUT("/makes/:id", makeController.UpdateMake)
		protected.DELETE("/makes/:id", makeController.DeleteMake)

		protected.POST("/models", modelController.CreateModel)
		protected.PUT("/models/:id", modelController.UpdateModel)
		protected.DELETE("/models/:id", modelController.DeleteModel)

		protected.POST("/categories", categoryController.CreateCategory)
		protected.PUT("/categories/:id", categoryController.UpdateCategory)
		protected.DELETE("/categories/:id", categoryController.DeleteCategory)
	}
}
