package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aureliabotanicals/storefront-platform/internal/api/handlers"
	"github.com/aureliabotanicals/storefront-platform/internal/api/middleware"
	"github.com/aureliabotanicals/storefront-platform/internal/cache"
	"github.com/aureliabotanicals/storefront-platform/internal/config"
	"github.com/aureliabotanicals/storefront-platform/internal/health"
	"github.com/aureliabotanicals/storefront-platform/internal/metrics"
	repository "github.com/aureliabotanicals/storefront-platform/internal/repositories"
	service "github.com/aureliabotanicals/storefront-platform/internal/services"
	"github.com/aureliabotanicals/storefront-platform/internal/telemetry"
	"github.com/aureliabotanicals/storefront-platform/pkg/sendgrid"
	"github.com/aureliabotanicals/storefront-platform/pkg/stripe"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg)
	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimitRepo, jwtKey, cfg.Security.TokenTTL)
	userHandler := handlers.NewUserHandler(userService)
	categoryService := service.NewCategoryService(repos.Category)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productService := service.NewProductService(repos.Product, repos.Category)
	productHandler := handlers.NewProductHandler(productService)
	offerService := service.NewOfferService(repos.Offer, repos.Product, redisCache, cfg.Cache.OfferListTTL)
	offerHandler := handlers.NewOfferHandler(offerService)
	bundleKitService := service.NewBundleKitService(repos.Bundle, repos.Product)
	bundleKitHandler := handlers.NewBundleKitHandler(bundleKitService)
	giftBoxService := service.NewGiftBoxService(repos.GiftBox, repos.Product)
	giftBoxHandler := handlers.NewGiftBoxHandler(giftBoxService)
	notificationService := service.NewNotificationService(emailService, cfg.SendGrid.FromName)
	orderService := service.NewOrderService(repos.Order, repos.Product, notificationService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentService := service.NewPaymentService(repos.Order, stripeClient)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	settingsService := service.NewSettingsService(repos.Settings)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Dependencies{
		DB:           repos.DB,
		RedisClient:  redisClient,
		StripeClient: &stripeClient,
	})
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Admin auth
	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/profile", authMiddleware.Authenticate(userHandler.Profile()))

	// Offers: admin lifecycle + public storefront reads
	routerMux.HandleFunc("POST /api/v1/offers", authMiddleware.Authenticate(offerHandler.CreateOffer()))
	routerMux.HandleFunc("GET /api/v1/offers", offerHandler.ListActiveOffers())
	routerMux.HandleFunc("GET /api/v1/offers/all", authMiddleware.Authenticate(offerHandler.ListOffers()))
	routerMux.HandleFunc("GET /api/v1/offers/{id}", authMiddleware.Authenticate(offerHandler.GetOffer()))
	routerMux.HandleFunc("PUT /api/v1/offers/{id}", authMiddleware.Authenticate(offerHandler.UpdateOffer()))
	routerMux.HandleFunc("DELETE /api/v1/offers/{id}", authMiddleware.Authenticate(offerHandler.DeleteOffer()))
	routerMux.HandleFunc("GET /api/v1/offers/by-product/{productId}", offerHandler.GetActiveOfferByProduct())

	// Catalog
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.Authenticate(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/by-slug/{slug}", productHandler.GetProductBySlug())
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.Authenticate(productHandler.DeleteProduct()))
	routerMux.HandleFunc("GET /api/v1/products/by-category/{categoryId}", productHandler.ListProductsByCategory())
	routerMux.HandleFunc("GET /api/v1/products/by-subcategory/{subcategoryId}", productHandler.ListProductsBySubcategory())

	routerMux.HandleFunc("POST /api/v1/categories", authMiddleware.Authenticate(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("GET /api/v1/categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/categories/{id}", categoryHandler.GetCategory())
	routerMux.HandleFunc("GET /api/v1/categories/by-slug/{slug}", categoryHandler.GetCategoryBySlug())
	routerMux.HandleFunc("PUT /api/v1/categories/{id}", authMiddleware.Authenticate(categoryHandler.UpdateCategory()))
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", authMiddleware.Authenticate(categoryHandler.DeleteCategory()))

	// Bundle kits and gift boxes
	routerMux.HandleFunc("POST /api/v1/bundle-kits", authMiddleware.Authenticate(bundleKitHandler.CreateKit()))
	routerMux.HandleFunc("GET /api/v1/bundle-kits", bundleKitHandler.ListKits())
	routerMux.HandleFunc("GET /api/v1/bundle-kits/{id}", bundleKitHandler.GetKit())
	routerMux.HandleFunc("GET /api/v1/bundle-kits/by-slug/{slug}", bundleKitHandler.GetKitBySlug())
	routerMux.HandleFunc("PUT /api/v1/bundle-kits/{id}", authMiddleware.Authenticate(bundleKitHandler.UpdateKit()))
	routerMux.HandleFunc("DELETE /api/v1/bundle-kits/{id}", authMiddleware.Authenticate(bundleKitHandler.DeleteKit()))
	routerMux.HandleFunc("POST /api/v1/gift-boxes", authMiddleware.Authenticate(giftBoxHandler.CreateKit()))
	routerMux.HandleFunc("GET /api/v1/gift-boxes", giftBoxHandler.ListKits())
	routerMux.HandleFunc("GET /api/v1/gift-boxes/{id}", giftBoxHandler.GetKit())
	routerMux.HandleFunc("GET /api/v1/gift-boxes/by-slug/{slug}", giftBoxHandler.GetKitBySlug())
	routerMux.HandleFunc("PUT /api/v1/gift-boxes/{id}", authMiddleware.Authenticate(giftBoxHandler.UpdateKit()))
	routerMux.HandleFunc("DELETE /api/v1/gift-boxes/{id}", authMiddleware.Authenticate(giftBoxHandler.DeleteKit()))

	// Orders and payments
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.CreateOrder())
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", authMiddleware.Authenticate(orderHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("POST /api/v1/payments", authMiddleware.Authenticate(paymentHandler.CreatePayment()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())

	// Settings
	routerMux.HandleFunc("GET /api/v1/settings", settingsHandler.GetSettings())
	routerMux.HandleFunc("PUT /api/v1/settings", authMiddleware.Authenticate(settingsHandler.UpsertSettings()))

	// Operational endpoints
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "storefront-platform")

	// Setup http server
	server := http.Server{
		Addr:        cfg.HTTPServer.Address,
		Handler:     handler,
		IdleTimeout: cfg.HTTPServer.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.HTTPServer.Address))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Warn("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := redisClient.Close(); err != nil {
		slog.Warn("⚠️ Redis close encountered an issue", slog.String("error", err.Error()))
	}
}
