package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/turnero-digital/turnero-api/internal/audit"
	"github.com/turnero-digital/turnero-api/internal/callboard"
	"github.com/turnero-digital/turnero-api/internal/config"
	apdomain "github.com/turnero-digital/turnero-api/internal/domain/appointment"
	"github.com/turnero-digital/turnero-api/internal/handlers"
	infraRepo "github.com/turnero-digital/turnero-api/internal/infra/repository"
	"github.com/turnero-digital/turnero-api/internal/middleware"
	ucAppointment "github.com/turnero-digital/turnero-api/internal/usecase/appointment"
	ucAttendance "github.com/turnero-digital/turnero-api/internal/usecase/attendance"
	ucTurncall "github.com/turnero-digital/turnero-api/internal/usecase/turncall"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, board *callboard.Publisher, loc *time.Location) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	attendanceRepo := infraRepo.NewAttendanceGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotGuard := apdomain.NewConflictGuard(
		appointmentRepo,
		apdomain.ParseGranularity(cfg.SlotGranularity),
		loc,
	)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		slotGuard,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		appointmentRepo,
		slotGuard,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	setAppointmentStatusUC := ucAppointment.NewSetAppointmentStatus(
		appointmentRepo,
		auditDispatcher,
		loc,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// USE CASES — ATTENDANCES
	// ======================================================
	checkInUC := ucAttendance.NewCheckIn(attendanceRepo, auditDispatcher, loc)
	updateAttendanceUC := ucAttendance.NewUpdateAttendance(attendanceRepo)
	removeAttendanceUC := ucAttendance.NewRemoveAttendance(attendanceRepo, auditDispatcher)
	getAttendanceUC := ucAttendance.NewGetAttendance(attendanceRepo)
	listAttendancesUC := ucAttendance.NewListAttendances(attendanceRepo)

	// ======================================================
	// USE CASES — TURN CALLS
	// ======================================================
	callNextUC := ucTurncall.NewCallNext(attendanceRepo, auditDispatcher, board, loc)
	listCallsUC := ucTurncall.NewListCalls(attendanceRepo)
	completeAttendanceUC := ucTurncall.NewCompleteAttendance(attendanceRepo, auditDispatcher)
	markAbsentUC := ucTurncall.NewMarkAbsent(attendanceRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clientHandler := handlers.NewClientHandler(db, loc)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleAppointmentUC,
		cancelAppointmentUC,
		setAppointmentStatusUC,
		deleteAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		loc,
	)

	attendanceHandler := handlers.NewAttendanceHandler(
		checkInUC,
		updateAttendanceUC,
		removeAttendanceUC,
		getAttendanceUC,
		listAttendancesUC,
		loc,
	)

	turnCallHandler := handlers.NewTurnCallHandler(
		callNextUC,
		listCallsUC,
		completeAttendanceUC,
		markAbsentUC,
	)

	userHandler := handlers.NewUserHandler(db, cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", userHandler.UpdateMe)
			secured.PATCH("/me/password", userHandler.ChangeMyPassword)

			// Solo admin puede dar de alta operadores
			secured.POST("/auth/register",
				middleware.RequireRole("admin"), authHandler.Register)

			// ------------------------------
			// USERS (solo admin)
			// ------------------------------
			secured.GET("/users",
				middleware.RequireRole("admin"), userHandler.List)
			secured.GET("/users/:id",
				middleware.RequireRole("admin"), userHandler.Get)
			secured.PATCH("/users/:id",
				middleware.RequireRole("admin"), userHandler.Update)
			secured.PATCH("/users/:id/password",
				middleware.RequireRole("admin"), userHandler.ResetPassword)
			secured.DELETE("/users/:id",
				middleware.RequireRole("admin"), userHandler.Deactivate)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Deactivate)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/status",
				middleware.RequireRole("admin"), appointmentHandler.SetStatus)
			secured.DELETE("/appointments/:id",
				middleware.RequireRole("admin"), appointmentHandler.Delete)

			// ------------------------------
			// ATTENDANCES
			// ------------------------------
			secured.POST("/attendances", attendanceHandler.CheckIn)
			secured.GET("/attendances", attendanceHandler.List)
			secured.GET("/attendances/:id", attendanceHandler.Get)
			secured.PATCH("/attendances/:id", attendanceHandler.Update)
			secured.DELETE("/attendances/:id", attendanceHandler.Remove)

			// ------------------------------
			// TURN CALLS
			// ------------------------------
			secured.POST("/attendances/:id/calls", turnCallHandler.CallNext)
			secured.GET("/attendances/:id/calls", turnCallHandler.ListCalls)
			secured.PATCH("/attendances/:id/complete", turnCallHandler.Complete)
			secured.PATCH("/attendances/:id/absent", turnCallHandler.MarkAbsent)

			secured.GET("/audit-logs",
				middleware.RequireRole("admin"), auditLogsHandler.List)
		}
	}
}
