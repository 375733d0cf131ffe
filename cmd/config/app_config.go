package config

import (
	"Savora-Admin/internal/api/handlers"
	"Savora-Admin/internal/api/routes"
	"Savora-Admin/internal/middleware"
	"Savora-Admin/internal/utils"
	"Savora-Admin/pkg/ai"
	"Savora-Admin/pkg/external"
	"Savora-Admin/pkg/grocery"
	"Savora-Admin/pkg/inventory"
	"Savora-Admin/pkg/jwt"
	"Savora-Admin/pkg/midtrans"
	"Savora-Admin/pkg/recipe"
	"Savora-Admin/pkg/system"
	"Savora-Admin/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	systemRepository := system.NewSystemRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	middlewares := middleware.NewMiddleware(userRepository)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	groceryService := grocery.NewGroceryService(groceryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository)
	systemService := system.NewSystemService(systemRepository)
	aiService := ai.NewAIService(userRepository)
	recipeSearchService := external.NewRecipeSearchService(userRepository)
	midtransService := midtrans.NewMidtransService(
		midtransRepository,
		userRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	systemHandler := handlers.NewSystemHandler(systemService)
	aiHandler := handlers.NewAIHandler(aiService, validator)
	externalRecipeHandler := handlers.NewExternalRecipeHandler(recipeSearchService)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:                   app,
		UserHandler:           userHandler,
		InventoryHandler:      inventoryHandler,
		GroceryHandler:        groceryHandler,
		RecipeHandler:         recipeHandler,
		SystemHandler:         systemHandler,
		AIHandler:             aiHandler,
		ExternalRecipeHandler: externalRecipeHandler,
		MidtransHandler:       midtransHandler,
		Middleware:            middlewares,
		JWTService:            jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
