package routes

import (
	"time"

	"github.com/connect2study/server/internal/config"
	"github.com/connect2study/server/internal/handlers"
	"github.com/connect2study/server/internal/middleware"
	"github.com/connect2study/server/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

// Setup mounts every route. Paths keep the names the frontend already
// depends on, so several of them read like verbs (study-session-approved).
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	sessionHandler *handlers.SessionHandler,
	bookingHandler *handlers.BookingHandler,
	noteHandler *handlers.NoteHandler,
	materialHandler *handlers.MaterialHandler,
	reviewHandler *handlers.ReviewHandler,
	paymentHandler *handlers.PaymentHandler,
	announcementHandler *handlers.AnnouncementHandler,
) {
	// General rate limit: 100 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               100,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Token issuing gets a stricter limit: 10 req/min per IP
	app.Post("/jwt", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.IssueToken)

	jwt := middleware.JWTProtected(cfg)
	self := middleware.SelfScoped()
	admin := middleware.RequireRole(db, models.RoleAdmin)
	tutor := middleware.RequireRole(db, models.RoleTutor)
	student := middleware.RequireRole(db, models.RoleStudent)

	// Public
	app.Post("/users", authHandler.Register)
	app.Get("/tutors", userHandler.Tutors)
	app.Get("/study-sessions", sessionHandler.List)
	app.Get("/study-sessions/:id", sessionHandler.Get)
	app.Post("/study-sessions", sessionHandler.Create)
	app.Get("/announcements", announcementHandler.List)
	app.Get("/student-reviews/:sessionId", reviewHandler.ListBySession)

	// Token + self-scope
	app.Get("/users/admin/:email", jwt, self, userHandler.CheckAdmin)
	app.Get("/users/tutor/:email", jwt, self, userHandler.CheckTutor)
	app.Get("/payments/:email", jwt, self, paymentHandler.ListByStudent)
	app.Get("/student-booked-sessions/:email", jwt, self, bookingHandler.ListByStudent)
	app.Get("/student-notes/:email", jwt, self, noteHandler.ListByOwner)
	app.Get("/student-materials/:email", jwt, self, materialHandler.ListForStudent)
	app.Get("/tutor-materials/:email", jwt, self, materialHandler.ListByTutor)

	// Token + admin role
	app.Get("/allUsers", jwt, admin, userHandler.ListAll)
	app.Patch("/users/role/:id", jwt, admin, userHandler.UpdateRole)
	app.Delete("/users/:id", jwt, admin, userHandler.Delete)
	app.Patch("/study-session-approved/:id", jwt, admin, sessionHandler.Approve)
	app.Patch("/study-session-rejected/:id", jwt, admin, sessionHandler.Reject)
	app.Delete("/study-session-deleted/:id", jwt, admin, sessionHandler.Delete)
	app.Get("/materials", jwt, admin, materialHandler.ListAll)
	app.Delete("/material/:id", jwt, admin, materialHandler.Delete)
	app.Post("/announcement", jwt, admin, announcementHandler.Create)
	app.Get("/admin/overview", jwt, admin, paymentHandler.Overview)

	// Token + tutor role
	app.Post("/tutor-material", jwt, tutor, materialHandler.Create)
	app.Patch("/study-session-requested/:id", jwt, tutor, sessionHandler.Resubmit)

	// Token + student role
	app.Post("/student-booked-session", jwt, student, bookingHandler.Book)
	app.Post("/student-note", jwt, student, noteHandler.Create)
	app.Patch("/student-note/:id", jwt, student, noteHandler.Update)
	app.Delete("/student-note/:id", jwt, student, noteHandler.Delete)
	app.Post("/student-review", jwt, student, reviewHandler.Create)
	app.Post("/create-payment-intent", jwt, student, paymentHandler.CreateIntent)
	app.Post("/payments", jwt, student, paymentHandler.Record)
}
