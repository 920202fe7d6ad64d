package routes

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/barberflow/salon-api/internal/advice"
	"github.com/barberflow/salon-api/internal/audit"
	"github.com/barberflow/salon-api/internal/catalog"
	"github.com/barberflow/salon-api/internal/config"
	"github.com/barberflow/salon-api/internal/gallery"
	"github.com/barberflow/salon-api/internal/handlers"
	"github.com/barberflow/salon-api/internal/ledger"
	"github.com/barberflow/salon-api/internal/middleware"
	"github.com/barberflow/salon-api/internal/models"
	"github.com/barberflow/salon-api/internal/notify"
	"github.com/barberflow/salon-api/internal/session"
	"github.com/barberflow/salon-api/internal/state"
)

func RegisterRoutes(r *gin.Engine, st state.Store, cfg *config.Config) {

	ctx := context.Background()

	// ======================================================
	// CORE COMPONENTS (SINGLETONS)
	// ======================================================
	notifications := notify.NewLog()
	catalogStore := catalog.New(ctx, st)
	bookingLedger := ledger.New(ctx, st, catalogStore, notifications, session.AdminUserID)
	galleryManager := gallery.NewManager(ctx, st)
	identityProvider := session.NewProvider(catalogStore)

	auditLogger := audit.New(ctx, st)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	adviceClient := advice.NewClient(cfg.AdviceBaseURL, cfg.AdviceModel, cfg.AdviceAPIKey)

	var uploader *gallery.Uploader
	if cfg.UploadsEnabled() {
		uploader = gallery.NewUploader(gallery.UploaderConfig{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			BaseURL:   cfg.S3PublicURL,
		})
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(identityProvider, cfg)
	bookingHandler := handlers.NewBookingHandler(bookingLedger, catalogStore, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(catalogStore, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(catalogStore, bookingLedger, auditDispatcher)
	galleryHandler := handlers.NewGalleryHandler(galleryManager, uploader, auditDispatcher)
	notificationHandler := handlers.NewNotificationHandler(notifications)
	adviceHandler := handlers.NewAdviceHandler(adviceClient)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/barbers", barberHandler.List)
		api.GET("/availability", bookingHandler.Availability)
		api.GET("/gallery", galleryHandler.List)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)

			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.POST("/bookings/:id/rating", bookingHandler.Rate)

			secured.GET("/notifications", notificationHandler.List)
			secured.POST("/notifications/read", notificationHandler.MarkAllRead)

			secured.POST("/advice", adviceHandler.GetAdvice)

			// ------------------------------
			// STAFF
			// ------------------------------
			secured.PATCH("/me/profile", barberHandler.UpdateProfile)
			secured.PATCH("/barbers/:id/day-off", barberHandler.ToggleDayOff)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.POST("/barbers", barberHandler.Create)
				admin.DELETE("/barbers/:id", barberHandler.Delete)
				admin.PATCH("/barbers/:id/profile", barberHandler.UpdateProfile)

				admin.POST("/gallery", galleryHandler.Add)
				admin.POST("/gallery/upload", galleryHandler.Upload)
				admin.DELETE("/gallery/:index", galleryHandler.Remove)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
