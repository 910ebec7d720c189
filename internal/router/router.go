package router

import (
	"fmt"
	"strings"

	"github.com/avtorazbor/internal/cache"
	"github.com/avtorazbor/internal/config"
	"github.com/avtorazbor/internal/constants"
	operatorhandlers "github.com/avtorazbor/internal/http/handlers/operator"
	publichandlers "github.com/avtorazbor/internal/http/handlers/public"
	"github.com/avtorazbor/internal/logger"
	"github.com/avtorazbor/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and every route group.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	operatorHandler := operatorhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "too many login attempts",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded part photos.
	r.Static("/uploads", cfg.Upload.Dir)

	authRequired := JWTAuthMiddleware(c.AuthService, c.UserService)

	apiV1 := r.Group("/api/v1")
	{
		users := apiV1.Group("/users")
		{
			users.POST("/register", publicHandler.UserRegister)
			users.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("login")), publicHandler.UserLogin)

			profile := users.Group("/profile", authRequired)
			{
				profile.GET("", publicHandler.GetProfile)
				profile.PUT("", publicHandler.UpdateProfile)
				profile.DELETE("", publicHandler.DeleteProfile)
			}

			admin := users.Group("", authRequired, RequireOperator())
			{
				admin.GET("", operatorHandler.ListUsers)
				admin.GET("/:id", operatorHandler.GetUser)
				admin.DELETE("/:id", operatorHandler.DeleteUser)
			}
		}

		parts := apiV1.Group("/parts")
		{
			parts.GET("", publicHandler.GetParts)
			parts.GET("/:id", publicHandler.GetPart)

			admin := parts.Group("", authRequired, RequireOperator())
			{
				admin.POST("", operatorHandler.CreatePart)
				admin.PUT("/:id", operatorHandler.UpdatePart)
				admin.DELETE("/:id", operatorHandler.DeletePart)
				admin.POST("/:id/image", operatorHandler.UploadPartImage)
			}
		}

		suppliers := apiV1.Group("/suppliers")
		{
			suppliers.GET("", publicHandler.GetSuppliers)
			suppliers.GET("/:id", publicHandler.GetSupplier)

			admin := suppliers.Group("", authRequired, RequireOperator())
			{
				admin.POST("", operatorHandler.CreateSupplier)
				admin.PUT("/:id", operatorHandler.UpdateSupplier)
				admin.DELETE("/:id", operatorHandler.DeleteSupplier)
			}
		}

		inventories := apiV1.Group("/inventories", authRequired, RequireOperator())
		{
			inventories.GET("", operatorHandler.ListInventories)
			inventories.GET("/:id", operatorHandler.GetInventory)
			inventories.POST("", operatorHandler.CreateInventory)
			inventories.PUT("/:id", operatorHandler.UpdateInventory)
			inventories.DELETE("/:id", operatorHandler.DeleteInventory)
		}

		orders := apiV1.Group("/orders", authRequired)
		{
			orders.POST("", publicHandler.CreateOrder)
			orders.GET("", publicHandler.ListOrders)
			orders.GET("/:id", publicHandler.GetOrder)
			orders.PUT("/:id/cancel", publicHandler.CancelOrder)
			orders.PUT("/:id/status", RequireOperator(), operatorHandler.UpdateOrderStatus)
		}

		reviews := apiV1.Group("/reviews")
		{
			reviews.GET("", publicHandler.GetReviews)
			reviews.POST("", authRequired, publicHandler.CreateReview)
			reviews.PUT("/:id", authRequired, publicHandler.UpdateReview)
			reviews.DELETE("/:id", authRequired, publicHandler.DeleteReview)
		}

		favorites := apiV1.Group("/favorites", authRequired)
		{
			favorites.GET("", publicHandler.ListFavorites)
			favorites.POST("", publicHandler.AddFavorite)
			favorites.DELETE("/:part_id", publicHandler.RemoveFavorite)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
