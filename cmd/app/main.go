package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/dinesh3456/essential-workers-booking/cmd/fx/authfx"
	"github.com/dinesh3456/essential-workers-booking/cmd/fx/bookingfx"
	"github.com/dinesh3456/essential-workers-booking/cmd/fx/catalogfx"
	"github.com/dinesh3456/essential-workers-booking/cmd/fx/dbfx"
	"github.com/dinesh3456/essential-workers-booking/cmd/fx/locationfx"
	"github.com/dinesh3456/essential-workers-booking/cmd/fx/mailfx"
	"github.com/dinesh3456/essential-workers-booking/cmd/fx/notificationfx"
	"github.com/dinesh3456/essential-workers-booking/cmd/fx/paymentfx"
	"github.com/dinesh3456/essential-workers-booking/cmd/fx/reviewfx"
	"github.com/dinesh3456/essential-workers-booking/cmd/fx/workerfx"
	"github.com/dinesh3456/essential-workers-booking/config"
	"github.com/dinesh3456/essential-workers-booking/internal/api/controllers"
	"github.com/dinesh3456/essential-workers-booking/pkg/logger"
	"github.com/dinesh3456/essential-workers-booking/pkg/middleware"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	config.Load()
	logger.Initialize()

	app := fx.New(
		dbfx.Module,
		authfx.Module,
		catalogfx.Module,
		workerfx.Module,
		bookingfx.Module,
		paymentfx.Module,
		mailfx.Module,
		notificationfx.Module,
		locationfx.Module,
		reviewfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := ":" + config.AppConfig.AppPort
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	workerController *controllers.WorkerController,
	catalogController *controllers.CatalogController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	notificationController *controllers.NotificationController,
	locationController *controllers.LocationController,
	reviewController *controllers.ReviewController,
	tokens *utils.TokenManager,
) *gin.Engine {

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tokens,
		authController, workerController, catalogController, bookingController,
		paymentController, notificationController, locationController, reviewController)

	return r
}

func RegisterRoutes(r *gin.Engine, tokens *utils.TokenManager,
	authController *controllers.AuthController,
	workerController *controllers.WorkerController,
	catalogController *controllers.CatalogController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	notificationController *controllers.NotificationController,
	locationController *controllers.LocationController,
	reviewController *controllers.ReviewController) {

	auth := middleware.JWTAuthMiddleware(tokens)
	adminOnly := middleware.RoleMiddleware("admin")

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/me", auth, authController.Me)
	authGroup.POST("/change-password", auth, authController.ChangePassword)

	servicesGroup := r.Group("/services")
	servicesGroup.GET("", catalogController.ListServices)
	servicesGroup.GET("/:id", catalogController.GetService)
	servicesGroup.POST("", auth, adminOnly, catalogController.CreateService)
	servicesGroup.PUT("/:id", auth, adminOnly, catalogController.UpdateService)
	servicesGroup.DELETE("/:id", auth, adminOnly, catalogController.DeactivateService)

	workersGroup := r.Group("/workers")
	workersGroup.GET("", workerController.ListWorkers)
	workersGroup.GET("/nearby", workerController.Nearby)
	workersGroup.GET("/:id", workerController.GetWorker)
	workersGroup.GET("/:id/reviews", reviewController.ListWorkerReviews)
	workersGroup.POST("", auth, workerController.Onboard)
	workersGroup.PATCH("/availability", auth, workerController.UpdateAvailability)
	workersGroup.PUT("/services", auth, workerController.AssignServices)
	workersGroup.PATCH("/:id/status", auth, adminOnly, workerController.UpdateStatus)

	bookingsGroup := r.Group("/bookings", auth)
	bookingsGroup.POST("", bookingController.CreateBooking)
	bookingsGroup.GET("", bookingController.ListBookings)
	bookingsGroup.GET("/:id", bookingController.GetBooking)
	bookingsGroup.PATCH("/:id/status", bookingController.UpdateStatus)
	bookingsGroup.POST("/:id/cancel", bookingController.Cancel)

	paymentsGroup := r.Group("/payments")
	paymentsGroup.POST("/intent", auth, paymentController.CreateIntent)
	paymentsGroup.POST("/webhook", paymentController.HandleWebhook)

	notificationsGroup := r.Group("/notifications", auth)
	notificationsGroup.GET("", notificationController.ListNotifications)
	notificationsGroup.PATCH("/:id/read", notificationController.MarkRead)

	locationsGroup := r.Group("/locations", auth)
	locationsGroup.POST("/geocode", locationController.Geocode)
	locationsGroup.POST("/reverse-geocode", locationController.ReverseGeocode)

	reviewsGroup := r.Group("/reviews", auth)
	reviewsGroup.POST("", reviewController.CreateReview)
}
