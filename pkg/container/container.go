package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/config"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/infrastructure/database"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/infrastructure/storage"
	"github.com/ViktoriaKonoplyanik/recipe-manager/pkg/jwt"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment"
	commentHandler "github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment/handler"
	commentRepo "github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment/repository"
	commentService "github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment/service"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe"
	recipeHandler "github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe/handler"
	recipeRepo "github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe/repository"
	recipeService "github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe/service"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/user"
	userHandler "github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/user/handler"
	userRepo "github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/user/repository"
	userService "github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the application's lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Storage    storage.ObjectStorage
	JWTManager *jwt.Manager

	// Repositories
	UserRepo    user.Repository
	RecipeRepo  recipe.Repository
	CommentRepo comment.Repository

	// Services
	UserService    user.Service
	RecipeService  recipe.Service
	CommentService comment.Service

	// Handlers
	UserHandler    *userHandler.UserHandler
	RecipeHandler  *recipeHandler.RecipeHandler
	CommentHandler *commentHandler.CommentHandler
}

// NewContainer builds the whole graph in dependency order:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	log.Println("📋 Loading configuration...")
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	log.Println("🗄️  Connecting to PostgreSQL...")
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("✅ Database connected")

	log.Println("🪣 Connecting to MinIO...")
	objectStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = objectStorage
	log.Println("✅ Object storage ready")

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	log.Println("📦 Initializing repositories...")
	c.initRepositories()

	log.Println("⚙️  Initializing services...")
	c.initServices()

	log.Println("🎯 Initializing handlers...")
	c.initHandlers()

	log.Println("✅ Container ready")
	return c, nil
}

func (c *Container) initRepositories() {
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
	c.RecipeRepo = recipeRepo.NewPostgresRepository(c.DB.Pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.RecipeService = recipeService.NewRecipeService(c.RecipeRepo, c.Storage, c.Config.Recipe.Categories)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.RecipeHandler = recipeHandler.NewRecipeHandler(c.RecipeService, c.CommentService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		_ = c.DB.Close()
	}
}
