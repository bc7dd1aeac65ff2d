package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"bibliotheque-backend/internal/config"
	"bibliotheque-backend/internal/infrastructure/database"

	authorHandler "bibliotheque-backend/internal/domains/author/handler"
	authorRepo "bibliotheque-backend/internal/domains/author/repository"
	authorService "bibliotheque-backend/internal/domains/author/service"
	bookHandler "bibliotheque-backend/internal/domains/book/handler"
	bookRepo "bibliotheque-backend/internal/domains/book/repository"
	bookService "bibliotheque-backend/internal/domains/book/service"
)

// Container holds every dependency of the application and is the root of
// the dependency graph. All members are singletons for the app lifetime.
type Container struct {
	Config *config.Config
	DB     *database.MongoDB

	BookRepo   bookRepo.RepositoryInterface
	AuthorRepo authorRepo.RepositoryInterface

	BookService   bookService.ServiceInterface
	AuthorService authorService.ServiceInterface

	BookHandler   *bookHandler.Handler
	AuthorHandler *authorHandler.Handler
}

// NewContainer initializes the dependency graph in order:
// config → database → repositories → services → handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewMongoDB(ctx, &cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	c.DB = db

	c.BookRepo = bookRepo.NewMongoRepository(db)
	c.AuthorRepo = authorRepo.NewMongoRepository(db)

	// Unique titre/isbn constraints and the text-search index live in the
	// store; without them creation conflicts and search silently degrade.
	if err := c.BookRepo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	c.BookService = bookService.NewService(c.BookRepo)
	c.AuthorService = authorService.NewService(c.AuthorRepo)

	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.AuthorHandler = authorHandler.NewHandler(c.AuthorService)

	log.Println("✅ DI Container ready")
	return c, nil
}

// Cleanup releases the container's resources.
func (c *Container) Cleanup() {
	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.DB.Close(ctx); err != nil {
			log.Printf("⚠️  Failed to close MongoDB connection: %v", err)
		}
	}
}
