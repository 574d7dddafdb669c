package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/quicklic/clinic-scheduler/internal/cache"
	"github.com/quicklic/clinic-scheduler/internal/config"
	"github.com/quicklic/clinic-scheduler/internal/handlers"
	infraRepo "github.com/quicklic/clinic-scheduler/internal/infra/repository"
	"github.com/quicklic/clinic-scheduler/internal/middleware"
	"github.com/quicklic/clinic-scheduler/internal/models"
	"github.com/quicklic/clinic-scheduler/internal/notification"
	"github.com/quicklic/clinic-scheduler/internal/observability/metrics"
	ucScheduling "github.com/quicklic/clinic-scheduler/internal/usecase/scheduling"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
	m *metrics.SchedulingMetrics,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingGormRepository(db)

	notificationWriter := notification.NewWriter(db)
	notificationDispatcher := notification.NewDispatcher(notificationWriter, log)

	slotCache := cache.NewSlotCache(rdb, log)

	// ======================================================
	// USE CASES — SCHEDULING
	// ======================================================
	getSlotsUC := ucScheduling.NewGetSlots(
		schedulingRepo,
		slotCache,
		m,
	)

	bookAppointmentUC := ucScheduling.NewBookAppointment(
		schedulingRepo,
		notificationDispatcher,
		slotCache,
		m,
	)

	listAppointmentsUC := ucScheduling.NewListAppointments(
		schedulingRepo,
	)

	changeStatusUC := ucScheduling.NewChangeStatus(
		schedulingRepo,
		notificationDispatcher,
		slotCache,
	)

	cancelAppointmentUC := ucScheduling.NewCancelAppointment(
		schedulingRepo,
		notificationDispatcher,
		slotCache,
	)

	updateAvailabilityUC := ucScheduling.NewUpdateAvailability(
		schedulingRepo,
		notificationDispatcher,
		slotCache,
		m,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)

	slotHandler := handlers.NewSlotHandler(getSlotsUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookAppointmentUC,
		listAppointmentsUC,
		changeStatusUC,
		cancelAppointmentUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(
		schedulingRepo,
		updateAvailabilityUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Get)

			secured.GET("/doctors/:id/slots", slotHandler.ListForDay)

			secured.GET("/appointments", appointmentHandler.List)

			secured.GET("/notifications", notificationHandler.List)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

			// ------------------------------
			// PATIENT ONLY
			// ------------------------------
			patient := secured.Group("/")
			patient.Use(middleware.RequireRole(models.RolePatient))
			{
				patient.POST("/appointments", appointmentHandler.Create)
				patient.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			}

			// ------------------------------
			// DOCTOR ONLY
			// ------------------------------
			doctor := secured.Group("/")
			doctor.Use(middleware.RequireRole(models.RoleDoctor))
			{
				doctor.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

				doctor.GET("/me/availability", availabilityHandler.Get)
				doctor.PUT("/me/availability", availabilityHandler.Update)
			}
		}
	}
}
