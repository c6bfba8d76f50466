package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/emon00007/easysubstech/internal/api/handler"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

// Deps carries the wired services and infrastructure handles the router needs.
type Deps struct {
	Users    ports.UserService
	Catalog  ports.CatalogService
	Payments ports.PaymentService
	OTP      ports.OTPService

	Mongo *mongo.Database
	Redis *redis.Client // nil unless the Redis OTP store is configured
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("easysubs"))

	userHandler := handler.NewUserHandler(deps.Users)
	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)
	otpHandler := handler.NewOTPHandler(deps.OTP)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to EasySubsTech!")
	})

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List)
	e.GET("/users/role/:role", userHandler.ListByRole)
	e.GET("/users/:email", userHandler.GetByEmail)

	// --- Service catalog ---
	e.POST("/services", catalogHandler.Create)
	e.GET("/services", catalogHandler.List)
	e.GET("/services/:id", catalogHandler.Get)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent)
	e.POST("/payments", paymentHandler.Record)
	e.GET("/payments", paymentHandler.List)
	e.GET("/payments/:email", paymentHandler.ListByEmail)

	// --- OTP ---
	e.POST("/send-otp", otpHandler.Send)
	e.POST("/verify-otp", otpHandler.Verify)
	e.POST("/resend-otp", otpHandler.Resend)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
