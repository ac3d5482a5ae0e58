// Package app wires configuration, storage, realtime delivery and HTTP
// handlers into a runnable Fiber application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"nutrimix/internal/config"
	"nutrimix/internal/handlers"
	"nutrimix/internal/metrics"
	"nutrimix/internal/middleware"
	"nutrimix/internal/realtime"
	"nutrimix/internal/repositories"
	"nutrimix/internal/services"
	"nutrimix/pkg/cache"
	"nutrimix/pkg/rabbitmq"
)

// Repositories bundles one storage adapter per entity.
type Repositories struct {
	Users    repositories.UserRepository
	Products repositories.ProductRepository
	Invoices repositories.InvoiceRepository
	Coupons  repositories.CouponRepository
}

// App is a fully wired server.
type App struct {
	Fiber    *fiber.App
	Hub      *realtime.Hub
	Auth     *services.AuthService
	Products *services.ProductService
	Invoices *services.InvoiceService
	Coupons  *services.CouponService

	closers []func() error
}

// New opens the configured backends and builds the application.
func New(cfg config.Config) (*App, error) {
	repos, closeRepos, err := OpenRepositories(cfg)
	if err != nil {
		return nil, err
	}
	closers := []func() error{closeRepos}

	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			TTL:      cfg.ProductCacheTTL,
		})
		if err != nil {
			runClosers(closers)
			return nil, err
		}
		repos.Products = repositories.NewCachedProductRepository(repos.Products, redisClient)
		closers = append(closers, func() error { redisClient.Close(); return nil })
	}

	hub := realtime.NewHub()
	var publisher realtime.Publisher = hub

	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			runClosers(closers)
			return nil, err
		}
		closers = append(closers, mqClient.Close)

		err = mqClient.ConsumeEvents(func(name string) error {
			hub.Publish(realtime.Event(name))
			return nil
		})
		if err != nil {
			runClosers(closers)
			return nil, err
		}
		publisher = realtime.NewRelay(mqClient, hub)
	}

	a := NewWithRepositories(cfg, repos, hub, publisher)
	a.closers = closers
	return a, nil
}

// NewWithRepositories builds the application on already opened storage.
func NewWithRepositories(cfg config.Config, repos Repositories, hub *realtime.Hub, publisher realtime.Publisher) *App {
	authService := services.NewAuthService(repos.Users, cfg.JWTSecret, cfg.TokenTTL)
	productService := services.NewProductService(repos.Products, publisher)
	invoiceService := services.NewInvoiceService(repos.Invoices, publisher)
	couponService := services.NewCouponService(repos.Coupons, publisher)

	f := fiber.New(fiber.Config{AppName: "nutrimix"})
	f.Use(recover.New())
	f.Use(logger.New())
	f.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
	}))
	f.Use(middleware.Metrics())

	guard := middleware.Open()
	if cfg.AuthRequired {
		guard = middleware.AuthRequired(authService)
	}

	api := f.Group("/api")
	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewProductHandler(productService).RegisterRoutes(api, guard)
	handlers.NewInvoiceHandler(invoiceService).RegisterRoutes(api, guard)
	handlers.NewCouponHandler(couponService).RegisterRoutes(api, guard)
	handlers.NewRealtimeHandler(hub).RegisterRoutes(f)

	f.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"backend": cfg.DBDriver,
		})
	})
	f.Get("/metrics", metrics.Handler())

	return &App{
		Fiber:    f,
		Hub:      hub,
		Auth:     authService,
		Products: productService,
		Invoices: invoiceService,
		Coupons:  couponService,
	}
}

// Seed replaces the product catalog with the sample products.
func (a *App) Seed(ctx context.Context) error {
	products := SampleCatalog()
	if err := a.Products.ReplaceCatalog(ctx, products); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	for _, p := range products {
		log.Printf("Seeded product: %s (ID: %d)", p.Name, p.ID)
	}
	return nil
}

// Shutdown stops the HTTP server, disconnects realtime clients and closes
// every backend connection.
func (a *App) Shutdown() error {
	var errs []error
	if err := a.Fiber.Shutdown(); err != nil {
		errs = append(errs, fmt.Errorf("fiber shutdown: %w", err))
	}
	a.Hub.Close()
	if err := runClosers(a.closers); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func runClosers(closers []func() error) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
