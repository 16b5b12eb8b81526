package routes

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	ChefHandler   handlers.ChefHandler
	RecipeHandler handlers.RecipeHandler
	AuthorHandler handlers.AuthorHandler
	BookHandler   handlers.BookHandler
	ReviewHandler handlers.ReviewHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Chefs()
	c.Recipes()
	c.Authors()
	c.Books()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.UserHandler.Logout)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		auth.Get("/users", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetUsers)
		auth.Delete("/users/:id", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Chefs() {
	chefs := c.App.Group("/api/chefs")
	{
		chefs.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ChefHandler.CreateChef)
		chefs.Get("", c.ChefHandler.GetChefs)
		chefs.Get("/:id", c.ChefHandler.GetChefDetail)
		chefs.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ChefHandler.UpdateChef)
		chefs.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ChefHandler.DeleteChef)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Get("/all", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id/reviews", c.ReviewHandler.GetReviewsByRecipe)
		recipes.Post("/:id/reviews", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.AddReview)
		recipes.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Authors() {
	authors := c.App.Group("/api/authors")
	{
		authors.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.AuthorHandler.CreateAuthor)
		authors.Get("", c.AuthorHandler.GetAuthors)
		authors.Get("/:id", c.AuthorHandler.GetAuthorDetail)
		authors.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.AuthorHandler.UpdateAuthor)
		authors.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.AuthorHandler.DeleteAuthor)
	}
}

func (c *Config) Books() {
	books := c.App.Group("/api/books")
	{
		books.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.BookHandler.CreateBook)
		books.Get("/all", c.BookHandler.GetBooks)
		books.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.BookHandler.UploadBookImage)
		books.Get("/:id", c.BookHandler.GetBookDetail)
		books.Patch("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.BookHandler.UpdateBook)
		books.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.BookHandler.DeleteBook)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Server is running!"})
	})
}
