package config

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"plateful-backend/internal/api/handlers"
	"plateful-backend/internal/api/routes"
	"plateful-backend/internal/middleware"
	"plateful-backend/internal/utils"
	"plateful-backend/internal/utils/mailing"
	"plateful-backend/internal/utils/storage"
	"plateful-backend/pkg/auth"
	"plateful-backend/pkg/comment"
	"plateful-backend/pkg/jwt"
	"plateful-backend/pkg/like"
	"plateful-backend/pkg/profile"
	"plateful-backend/pkg/recipe"
	"plateful-backend/pkg/viewcache"
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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	provider := auth.NewGotrueProvider()
	mailer := mailing.SMTP{}

	views := viewcache.NewNoop()
	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		redisDB, _ := strconv.Atoi(utils.GetConfig("REDIS_DB"))
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: utils.GetConfig("REDIS_PASSWORD"),
			DB:       redisDB,
		})
		views = viewcache.NewRedisCache(client)
	}

	// Repository
	profileRepository := profile.NewProfileRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	likeRepository := like.NewLikeRepository(db)
	commentRepository := comment.NewCommentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	profileService := profile.NewProfileService(profileRepository)
	authService := auth.NewAuthService(provider, profileService, jwtService, mailer)
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		profileRepository,
		likeRepository,
		commentRepository,
		s3,
		views,
	)
	likeService := like.NewLikeService(likeRepository, recipeRepository, views)
	commentService := comment.NewCommentService(commentRepository, recipeRepository, views)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator)
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	likeHandler := handlers.NewLikeHandler(likeService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		AuthHandler:    authHandler,
		ProfileHandler: profileHandler,
		RecipeHandler:  recipeHandler,
		LikeHandler:    likeHandler,
		CommentHandler: commentHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
