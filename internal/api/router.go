package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/palmbay-resort/portal-api/docs"
	"github.com/palmbay-resort/portal-api/internal/api/handler"
	"github.com/palmbay-resort/portal-api/internal/api/middleware"
	"github.com/palmbay-resort/portal-api/internal/core/domain"
	"github.com/palmbay-resort/portal-api/internal/core/ports"
	"github.com/palmbay-resort/portal-api/internal/core/service"
	"github.com/palmbay-resort/portal-api/internal/infrastructure/config"
	mongodb "github.com/palmbay-resort/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/palmbay-resort/portal-api/internal/infrastructure/db/redis"
)

// Portal session cookie names. Distinct per portal so a guest token is never
// presented to the staff or admin guard.
const (
	guestCookie = "guest_session"
	staffCookie = "staff_session"
	adminCookie = "admin_session"
)

// NewRouter builds the Echo instance with all routes registered. The Mongo
// database, Redis client and notification queue are constructed and owned by
// the caller.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, queue ports.NotificationQueue, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("resort"))

	// --- Repositories (one identity collection per portal) ---
	guests := mongodb.NewIdentityRepository(db, mongodb.CollectionGuests, mongodb.KeyFieldEmail)
	staff := mongodb.NewIdentityRepository(db, mongodb.CollectionStaff, mongodb.KeyFieldUsername)
	admins := mongodb.NewIdentityRepository(db, mongodb.CollectionAdmin, mongodb.KeyFieldUsername)
	bookings := mongodb.NewBookingRepository(db)
	rooms := mongodb.NewRoomRepository(db)
	gallery := mongodb.NewGalleryRepository(db)
	attendance := mongodb.NewAttendanceRepository(db)

	limiter := redisdb.NewLoginRateLimiter(rdb)

	// --- Services ---
	guestAuth := service.NewAuthService(service.PortalConfig{
		Portal:     domain.PortalGuest,
		Salt:       cfg.GuestSalt,
		CookieName: guestCookie,
		KeyIsEmail: true,
	}, guests, limiter, log)
	staffAuth := service.NewAuthService(service.PortalConfig{
		Portal:       domain.PortalStaff,
		Salt:         cfg.StaffSalt,
		CookieName:   staffCookie,
		Departmental: true,
	}, staff, limiter, log)
	adminAuth := service.NewAuthService(service.PortalConfig{
		Portal:      domain.PortalAdmin,
		Salt:        cfg.AdminSalt,
		CookieName:  adminCookie,
		DefaultRole: domain.RoleAdmin,
	}, admins, limiter, log)

	bookingSvc := service.NewBookingService(bookings, queue, log)
	attendanceSvc := service.NewAttendanceService(attendance, log)

	// --- Handlers ---
	guestAuthHandler := handler.NewGuestAuthHandler(guestAuth)
	staffAuthHandler := handler.NewStaffAuthHandler(staffAuth, domain.PortalStaff, true)
	adminAuthHandler := handler.NewStaffAuthHandler(adminAuth, domain.PortalAdmin, false)
	bookingHandler := handler.NewBookingHandler(bookingSvc)
	contentHandler := handler.NewContentHandler(rooms, gallery)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	directoryHandler := handler.NewDirectoryHandler(guests, staff)

	guestSession := middleware.Session(guestAuth)
	staffSession := middleware.Session(staffAuth)
	adminSession := middleware.Session(adminAuth)

	// --- Guest portal ---
	guestGroup := e.Group("/api/guest")
	guestGroup.POST("/register", guestAuthHandler.Register)
	guestGroup.POST("/login", guestAuthHandler.Login)
	guestGroup.POST("/logout", guestAuthHandler.Logout)
	guestGroup.GET("/session", guestAuthHandler.Session, guestSession)
	guestGroup.POST("/bookings", bookingHandler.Create, guestSession)
	guestGroup.GET("/bookings", bookingHandler.ListOwn, guestSession)

	// --- Staff portal ---
	staffGroup := e.Group("/api/staff")
	staffGroup.POST("/register", staffAuthHandler.Register)
	staffGroup.POST("/login", staffAuthHandler.Login)
	staffGroup.POST("/logout", staffAuthHandler.Logout)
	staffGroup.GET("/session", staffAuthHandler.Session, staffSession)
	staffGroup.POST("/attendance/clock-in", attendanceHandler.ClockIn, staffSession)
	staffGroup.POST("/attendance/clock-out", attendanceHandler.ClockOut, staffSession)
	staffGroup.GET("/bookings", bookingHandler.ListAll,
		staffSession, middleware.RequireCapability(domain.CapManageBookings))
	staffGroup.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus,
		staffSession, middleware.RequireCapability(domain.CapManageBookings))

	// --- Admin portal ---
	adminGroup := e.Group("/api/admin")
	adminGroup.POST("/register", adminAuthHandler.Register)
	adminGroup.POST("/login", adminAuthHandler.Login)
	adminGroup.POST("/logout", adminAuthHandler.Logout)
	adminGroup.GET("/session", adminAuthHandler.Session, adminSession)
	adminGroup.GET("/guests", directoryHandler.ListGuests,
		adminSession, middleware.RequireCapability(domain.CapManageGuests))
	adminGroup.PATCH("/guests/:id/active", directoryHandler.SetGuestActive,
		adminSession, middleware.RequireCapability(domain.CapManageGuests))
	adminGroup.GET("/staff", directoryHandler.ListStaff,
		adminSession, middleware.RequireCapability(domain.CapManageStaff))
	adminGroup.PATCH("/staff/:id/active", directoryHandler.SetStaffActive,
		adminSession, middleware.RequireCapability(domain.CapManageStaff))
	adminGroup.PUT("/rooms", contentHandler.UpsertRoom,
		adminSession, middleware.RequireCapability(domain.CapManageRooms))
	adminGroup.GET("/attendance", attendanceHandler.ListDate,
		adminSession, middleware.RequireCapability(domain.CapManageAttendance))
	adminGroup.GET("/reports/bookings", bookingHandler.Summary,
		adminSession, middleware.RequireCapability(domain.CapViewReports))

	// --- Public content ---
	e.GET("/api/rooms", contentHandler.ListRooms)
	e.GET("/api/gallery", contentHandler.ListGallery)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
