package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/creation2music/checkout-backend/internal/catalog"
	"github.com/creation2music/checkout-backend/internal/config"
	"github.com/creation2music/checkout-backend/internal/handler"
	"github.com/creation2music/checkout-backend/internal/service"
	"github.com/creation2music/checkout-backend/pkg/logger"
	"github.com/creation2music/checkout-backend/pkg/payment"
	"github.com/creation2music/checkout-backend/pkg/utils"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()
	if cfg.Stripe.SecretKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is not set")
	}

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	// Catalog
	cat := catalog.New()

	// Stripe service
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey)

	// Validator
	validator := utils.NewValidator()

	// Services
	checkoutService := service.NewCheckoutService(stripeService, cat, validator, cfg.FrontendURL, zapLogger)

	// Handlers
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, cat, cfg.Stripe.PublishableKey)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Post("/create-checkout-session", checkoutHandler.CreateCheckoutSession)
	app.Get("/products", checkoutHandler.GetProducts)
	app.Get("/config", checkoutHandler.GetPublicConfig)

	zapLogger.Info("server starting", zap.String("port", cfg.Port))

	log.Fatal(app.Listen(":" + cfg.Port))
}
