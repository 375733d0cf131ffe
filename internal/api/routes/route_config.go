package routes

import (
	"Savora-Admin/domain"
	"Savora-Admin/internal/api/handlers"
	"Savora-Admin/internal/middleware"
	"Savora-Admin/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                   *fiber.App
	UserHandler           handlers.UserHandler
	InventoryHandler      handlers.InventoryHandler
	GroceryHandler        handlers.GroceryHandler
	RecipeHandler         handlers.RecipeHandler
	SystemHandler         handlers.SystemHandler
	AIHandler             handlers.AIHandler
	ExternalRecipeHandler handlers.ExternalRecipeHandler
	MidtransHandler       handlers.MidtransHandler
	Middleware            middleware.Middleware
	JWTService            jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Inventory()
	c.Grocery()
	c.Recipes()
	c.System()
	c.AI()
	c.ExternalRecipes()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/forgot-password", c.UserHandler.ForgotPassword)
		auth.Post("/reset-password", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/users", c.Middleware.AuthMiddleware(c.JWTService))
	{
		users.Get("/me", c.UserHandler.Me)
		users.Patch("/me", c.UserHandler.UpdateMe)
		users.Post("/subscribe", c.MidtransHandler.CreateTransaction)

		users.Get("", c.Middleware.OnlyRoles(domain.RoleAdmin), c.UserHandler.GetUsers)
		users.Patch("/:id", c.Middleware.OnlyRoles(domain.RoleAdmin), c.UserHandler.UpdateUser)
		users.Delete("/:id", c.Middleware.OnlyRoles(domain.RoleAdmin), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	{
		inventory.Get("", c.InventoryHandler.GetItems)
		inventory.Post("", c.InventoryHandler.AddItem)
		inventory.Put("/:id", c.InventoryHandler.UpdateItem)
		inventory.Delete("/:id", c.InventoryHandler.DeleteItem)
	}
}

func (c *Config) Grocery() {
	grocery := c.App.Group("/api/grocery", c.Middleware.AuthMiddleware(c.JWTService))
	{
		grocery.Get("", c.GroceryHandler.GetItems)
		grocery.Post("", c.GroceryHandler.AddItem)
		grocery.Delete("/completed", c.GroceryHandler.ClearCompleted)
		grocery.Put("/:id", c.GroceryHandler.UpdateItem)
		grocery.Patch("/:id/toggle", c.GroceryHandler.ToggleItem)
		grocery.Delete("/:id", c.GroceryHandler.DeleteItem)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Post("", c.RecipeHandler.AddRecipe)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) System() {
	system := c.App.Group("/api/system", c.Middleware.AuthMiddleware(c.JWTService))
	{
		system.Get("/stats", c.Middleware.OnlyRoles(domain.RoleAdmin, domain.RoleManager), c.SystemHandler.GetStats)
	}
}

func (c *Config) AI() {
	ai := c.App.Group("/api/ai", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ai.Post("/chat", c.AIHandler.Chat)
		ai.Post("/analyze-inventory", c.AIHandler.AnalyzeInventory)
	}
}

func (c *Config) ExternalRecipes() {
	external := c.App.Group("/api/external/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		external.Get("/search", c.ExternalRecipeHandler.SearchRecipes)
		external.Get("/:id", c.ExternalRecipeHandler.GetRecipeDetail)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
