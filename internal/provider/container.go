package provider

import (
	"github.com/avtorazbor/internal/cache"
	"github.com/avtorazbor/internal/config"
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/models"
	"github.com/avtorazbor/internal/repository"
	"github.com/avtorazbor/internal/service"
)

// Container wires repositories and services once and hands them to the
// handlers.
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo      repository.UserRepository
	SupplierRepo  repository.SupplierRepository
	PartRepo      repository.PartRepository
	InventoryRepo repository.InventoryRepository
	OrderRepo     repository.OrderRepository
	ReviewRepo    repository.ReviewRepository
	FavoriteRepo  repository.FavoriteRepository

	// Services
	AuthService      *service.AuthService
	UserService      *service.UserService
	UploadService    *service.UploadService
	PartService      *service.PartService
	SupplierService  *service.SupplierService
	InventoryService *service.InventoryService
	OrderService     *service.OrderService
	ReviewService    *service.ReviewService
	FavoriteService  *service.FavoriteService
}

// NewContainer initializes the container. Redis is optional; a failed
// connection degrades auth-state caching and rate limiting to DB-only
// behavior.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.SupplierRepo = repository.NewSupplierRepository(db)
	c.PartRepo = repository.NewPartRepository(db)
	c.InventoryRepo = repository.NewInventoryRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.FavoriteRepo = repository.NewFavoriteRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config)
	c.UserService = service.NewUserService(c.Config, c.UserRepo, c.OrderRepo, c.ReviewRepo, c.FavoriteRepo, c.AuthService)
	c.UploadService = service.NewUploadService(c.Config)
	c.PartService = service.NewPartService(c.PartRepo, c.SupplierRepo, c.InventoryRepo, c.ReviewRepo, c.FavoriteRepo, c.OrderRepo, c.UploadService)
	c.SupplierService = service.NewSupplierService(c.SupplierRepo, c.PartRepo, c.InventoryRepo)
	c.InventoryService = service.NewInventoryService(c.InventoryRepo, c.PartRepo, c.SupplierRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.PartRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.PartRepo)
	c.FavoriteService = service.NewFavoriteService(c.FavoriteRepo, c.PartRepo)
}
