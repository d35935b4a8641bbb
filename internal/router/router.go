// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/drivegear/autoparts-backend/internal/config"
	"github.com/drivegear/autoparts-backend/internal/events"
	"github.com/drivegear/autoparts-backend/internal/handlers"
	"github.com/drivegear/autoparts-backend/internal/middleware"
	"github.com/drivegear/autoparts-backend/internal/services"
	"github.com/drivegear/autoparts-backend/internal/store"
	"github.com/drivegear/autoparts-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) (*gin.Engine, error) {
	// Repositories
	userStore := store.NewGormUserStore(db)
	productStore := store.NewGormProductStore(db)
	orderStore := store.NewGormOrderStore(db)
	cartStore := store.NewGormCartStore(db)
	wishlistStore := store.NewGormWishlistStore(db)
	contactStore := store.NewGormContactStore(db)

	// Supporting services
	notificationService := services.NewNotificationService(cfg, logger)
	paymentService := services.NewPaymentService(cfg)
	storageService, err := services.NewStorageService(cfg, logger)
	if err != nil {
		return nil, err
	}
	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)

	// Domain services
	authService := services.NewAuthService(userStore, cfg, notificationService)
	catalogService, err := services.NewCatalogService(productStore)
	if err != nil {
		return nil, err
	}
	cartService := services.NewCartService(cartStore, productStore)
	comparisonService := services.NewComparisonService(productStore)
	wishlistService := services.NewWishlistService(wishlistStore, productStore)
	orderService := services.NewOrderService(orderStore)
	contactService := services.NewContactService(contactStore, notificationService)
	checkoutService := services.NewCheckoutService(
		cartStore, orderStore, userStore,
		paymentService, storageService, notificationService,
		publisher, logger,
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	comparisonHandler := handlers.NewComparisonHandler(comparisonService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/change-password", middleware.AuthRequired(), authHandler.ChangePassword)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
			auth.PUT("/me", middleware.AuthRequired(), authHandler.UpdateProfile)
			auth.DELETE("/me", middleware.AuthRequired(), authHandler.DeleteAccount)
		}

		// Catalog routes (public)
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", productHandler.ListCategories)
			categories.GET("/:category/products", productHandler.ListByCategory)
		}

		// Cart routes (guest-capable)
		cart := v1.Group("/cart")
		cart.Use(middleware.OptionalAuth())
		{
			cart.POST("", cartHandler.CreateCart)
			cart.GET("/:id", cartHandler.GetCart)
			cart.POST("/:id/items", cartHandler.AddItem)
			cart.PUT("/:id/items/:productId", cartHandler.UpdateItem)
			cart.DELETE("/:id/items/:productId", cartHandler.RemoveItem)
			cart.DELETE("/:id/items", cartHandler.ClearCart)
		}

		// Comparison routes (anonymous, session-scoped)
		comparison := v1.Group("/comparison")
		{
			comparison.GET("", comparisonHandler.List)
			comparison.POST("/:productId", comparisonHandler.Add)
			comparison.DELETE("/:productId", comparisonHandler.Remove)
			comparison.DELETE("", comparisonHandler.Clear)
		}

		// Wishlist routes (account-bound)
		wishlist := v1.Group("/wishlist")
		wishlist.Use(middleware.AuthRequired())
		{
			wishlist.GET("", wishlistHandler.List)
			wishlist.POST("/:productId", wishlistHandler.Add)
			wishlist.DELETE("/:productId", wishlistHandler.Remove)
		}

		// Checkout routes (guest-capable)
		checkoutRoutes := v1.Group("/checkout")
		checkoutRoutes.Use(middleware.OptionalAuth())
		{
			checkoutRoutes.GET("/delivery-options", checkoutHandler.DeliveryOptions)
			checkoutRoutes.GET("/payment-methods", checkoutHandler.PaymentMethods)
			checkoutRoutes.POST("", checkoutHandler.Start)
			checkoutRoutes.GET("/:id", checkoutHandler.Get)
			checkoutRoutes.POST("/:id/auth", checkoutHandler.CompleteAuth)
			checkoutRoutes.POST("/:id/address", checkoutHandler.SubmitAddress)
			checkoutRoutes.POST("/:id/delivery", checkoutHandler.SelectDelivery)
			checkoutRoutes.POST("/:id/payment", checkoutHandler.SelectPayment)
			checkoutRoutes.POST("/:id/back", checkoutHandler.Back)
			checkoutRoutes.POST("/:id/order", checkoutHandler.PlaceOrder)
			checkoutRoutes.DELETE("/:id", checkoutHandler.Cancel)
		}

		// Order history (account-bound)
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Contact form (public)
		contact := v1.Group("/contact")
		contact.Use(middleware.ContactRateLimit())
		{
			contact.POST("", contactHandler.Submit)
		}
	}

	return r, nil
}
