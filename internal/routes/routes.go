package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinica/appointments-api/internal/auth"
	domain "github.com/clinica/appointments-api/internal/domain/appointment"
	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/domain/user"
	"github.com/clinica/appointments-api/internal/handlers"
	"github.com/clinica/appointments-api/internal/middleware"
	ucAppointment "github.com/clinica/appointments-api/internal/usecase/appointment"
)

// Deps is everything the HTTP layer needs; main picks the backends.
type Deps struct {
	Users        user.Repository
	Centers      center.Repository
	Appointments domain.Repository
	Tokens       *auth.Tokens
	CORSOrigins  []string
	Logger       *zap.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(deps.Logger),
		gin.Recovery(),
		middleware.CORSMiddleware(deps.CORSOrigins),
	)

	// ======================================================
	// 🧠 USE CASES: APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(deps.Appointments)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(deps.Appointments)
	listAppointmentsUC := ucAppointment.NewListAppointments(deps.Appointments)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens)
	meHandler := handlers.NewMeHandler(deps.Users)
	centerHandler := handlers.NewCenterHandler(deps.Centers)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
	)

	// ------------------------------
	// PÚBLICO
	// ------------------------------
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// ------------------------------
	// 🔐 PRIVADO
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		secured.GET("/centers", centerHandler.List)
		secured.GET("/profile", meHandler.GetMe)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.POST("/date/create", appointmentHandler.Create)
		secured.POST("/date/getByDay", appointmentHandler.GetByDay)
		secured.GET("/date/getByUser", appointmentHandler.GetByUser)
		secured.POST("/date/delete", appointmentHandler.Delete)
		secured.GET("/dates", appointmentHandler.List)
	}
}
