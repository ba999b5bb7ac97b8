package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/shared/middleware"
	"github.com/ViktoriaKonoplyanik/recipe-manager/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupRecipeRoutes(v1, c)
		setupCommentRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.RefreshToken)
	}
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

func setupRecipeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	recipes := v1.Group("/recipes")
	{
		// Public read paths
		recipes.GET("", c.RecipeHandler.List)
		recipes.GET("/search", c.RecipeHandler.Search)
		recipes.GET("/categories", c.RecipeHandler.Categories)
		recipes.GET("/:id", c.RecipeHandler.GetByID)
		recipes.GET("/:id/comments", c.CommentHandler.ListByRecipe)

		// Mutations need an authenticated acting user
		authed := recipes.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			authed.POST("", c.RecipeHandler.Create)
			authed.PUT("/:id", c.RecipeHandler.Update)
			authed.DELETE("/:id", c.RecipeHandler.Delete)
			authed.POST("/:id/comments", c.CommentHandler.Add)
		}
	}
}

func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	comments := v1.Group("/comments")
	comments.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		comments.DELETE("/:id", c.CommentHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}
