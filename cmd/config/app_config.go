package config

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/api/routes"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/internal/utils"
	"Recipe-Share-Backend/internal/utils/storage"
	"Recipe-Share-Backend/pkg/author"
	"Recipe-Share-Backend/pkg/book"
	"Recipe-Share-Backend/pkg/chef"
	"Recipe-Share-Backend/pkg/jwt"
	"Recipe-Share-Backend/pkg/recipe"
	"Recipe-Share-Backend/pkg/review"
	"Recipe-Share-Backend/pkg/user"
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
	middlewares := middleware.NewMiddleware()
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
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	chefRepository := chef.NewChefRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	authorRepository := author.NewAuthorRepository(db)
	bookRepository := book.NewBookRepository(db)
	reviewRepository := review.NewReviewRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	chefService := chef.NewChefService(chefRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, chefService, s3)
	authorService := author.NewAuthorService(authorRepository)
	bookService := book.NewBookService(bookRepository, authorService, s3)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	chefHandler := handlers.NewChefHandler(chefService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	authorHandler := handlers.NewAuthorHandler(authorService, validator)
	bookHandler := handlers.NewBookHandler(bookService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		ChefHandler:   chefHandler,
		RecipeHandler: recipeHandler,
		AuthorHandler: authorHandler,
		BookHandler:   bookHandler,
		ReviewHandler: reviewHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
