package routes

import (
	"github.com/gofiber/fiber/v2"

	"plateful-backend/internal/api/handlers"
	"plateful-backend/internal/middleware"
	"plateful-backend/pkg/jwt"
)

type Config struct {
	App            *fiber.App
	AuthHandler    handlers.AuthHandler
	ProfileHandler handlers.ProfileHandler
	RecipeHandler  handlers.RecipeHandler
	LikeHandler    handlers.LikeHandler
	CommentHandler handlers.CommentHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Profiles()
	c.Recipes()
	c.Comments()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/register", c.AuthHandler.Register)
		auth.Post("/login", c.AuthHandler.Login)
		auth.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.AuthHandler.Logout)
	}
}

func (c *Config) Profiles() {
	profiles := c.App.Group("/api/v1/profiles", c.Middleware.AuthMiddleware(c.JWTService))
	{
		profiles.Get("/me", c.ProfileHandler.Me)
		profiles.Patch("/me", c.ProfileHandler.UpdateMe)
		profiles.Get("/me/likes", c.LikeHandler.GetMyLikes)
		profiles.Get("/check-username", c.ProfileHandler.CheckUsername)
		profiles.Get("/:username", c.ProfileHandler.GetByUsername)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		recipes.Get("/latest", c.RecipeHandler.GetLatest)
		recipes.Get("/mine", c.RecipeHandler.GetMyRecipes)
		recipes.Post("", c.RecipeHandler.CreateRecipe)
		recipes.Post("/cover", c.RecipeHandler.UploadCoverImage)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/like", c.LikeHandler.ToggleLike)
		recipes.Get("/:id/like", c.LikeHandler.GetLikeState)

		recipes.Get("/:id/comments", c.CommentHandler.GetComments)
		recipes.Post("/:id/comments", c.CommentHandler.CreateComment)
	}
}

func (c *Config) Comments() {
	comments := c.App.Group("/api/v1/comments", c.Middleware.AuthMiddleware(c.JWTService))
	{
		comments.Put("/:id", c.CommentHandler.UpdateComment)
		comments.Delete("/:id", c.CommentHandler.DeleteComment)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
