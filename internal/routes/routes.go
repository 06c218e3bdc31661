package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/campus-hub/campus_hub/internal/assignment"
	"github.com/campus-hub/campus_hub/internal/attendance"
	"github.com/campus-hub/campus_hub/internal/auth"
	"github.com/campus-hub/campus_hub/internal/config"
	"github.com/campus-hub/campus_hub/internal/course"
	"github.com/campus-hub/campus_hub/internal/event"
	"github.com/campus-hub/campus_hub/internal/fee"
	"github.com/campus-hub/campus_hub/internal/middleware"
	"github.com/campus-hub/campus_hub/internal/notification"
	"github.com/campus-hub/campus_hub/internal/student"
	"github.com/campus-hub/campus_hub/internal/token"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	app.Use(middleware.RateLimit(d.Cache, d.Cfg.RateLimitMax, d.Cfg.RateLimitWindow))

	RegisterHealthRoutes(app, d)

	// Repositories and services
	tokens := token.NewService(d.Cfg.JWTSecret, d.Cfg.AccessTokenTTL)

	studentSvc := student.NewService(student.NewPostgresRepository(d.DB),
		student.NewPostgresReports(d.DB), d.Cfg.BcryptCost)
	courseRepo := course.NewPostgresRepository(d.DB)
	courseSvc := course.NewService(courseRepo)
	attendanceSvc := attendance.NewService(attendance.NewPostgresRepository(d.DB), courseRepo)
	assignmentSvc := assignment.NewService(assignment.NewPostgresRepository(d.DB))
	notificationSvc := notification.NewService(notification.NewPostgresRepository(d.DB), d.Cache)
	feeSvc := fee.NewService(fee.NewPostgresRepository(d.DB), notificationSvc)
	eventSvc := event.NewService(event.NewPostgresRepository(d.DB), notificationSvc)

	authHandler := auth.NewHandler(studentSvc, tokens)

	api := app.Group("/api")

	// Public routes
	RegisterAuthRoutes(api, authHandler, middleware.LoginRateLimit(d.Cache, d.Cfg.LoginRateLimit))

	// Protected routes
	protected := api.Group("", middleware.Auth(tokens))
	protected.Get("/auth/me", authHandler.Me)
	RegisterStudentRoutes(protected, student.NewHandler(studentSvc))
	RegisterCourseRoutes(protected, course.NewHandler(courseSvc))
	RegisterAttendanceRoutes(protected, attendance.NewHandler(attendanceSvc))
	RegisterAssignmentRoutes(protected, assignment.NewHandler(assignmentSvc))
	RegisterFeeRoutes(protected, fee.NewHandler(feeSvc))
	RegisterEventRoutes(protected, event.NewHandler(eventSvc))
	RegisterNotificationRoutes(protected, notification.NewHandler(notificationSvc))

	return nil
}
