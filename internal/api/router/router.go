package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/config"
	"github.com/Maca31/IFPhub/internal/api/handler"
	"github.com/Maca31/IFPhub/internal/api/middleware"
	"github.com/Maca31/IFPhub/internal/service"
	"github.com/Maca31/IFPhub/pkg/jwt"
	"github.com/Maca31/IFPhub/pkg/redis"
)

// Setup builds the Gin engine with every portal route.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(2 << 20))

	// ── Health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Auth module (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		// Public catalog and boards
		v1.GET("/courses", h.Course.List)
		v1.GET("/projects", h.Project.List)
		v1.GET("/projects/:id", h.Project.Get)
		v1.GET("/projects/:id/comments", h.Project.Comments)
		v1.GET("/comments", h.Comment.List)
		v1.GET("/offers", h.Offer.List)
		v1.GET("/meetups", h.Meetup.List)
		v1.GET("/meetups/:id", h.Meetup.Get)
		v1.GET("/sessions", h.Session.List)

		// Newsletter relay (public)
		v1.POST("/newsletter/subscribe", h.Newsletter.Subscribe)

		// Appointments keep the legacy contract: the caller identifies
		// itself in the payload, so no token gate here.
		appointments := v1.Group("/appointments")
		{
			appointments.GET("", h.Appointment.List)
			appointments.POST("", h.Appointment.Book)
			appointments.DELETE("", h.Appointment.Cancel)
			appointments.GET("/availability", h.Appointment.Availability)
			appointments.GET("/agenda", h.Appointment.Agenda)
			appointments.GET("/export", h.Export.WeeklySheet)
			appointments.GET("/:id/ics", h.Appointment.ICS)
		}

		// Authenticated routes
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			users := authorized.Group("/users")
			{
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.PUT("/me", h.User.UpdateMe)
				users.POST("/me/images/:kind", middleware.BodyLimit(10<<20), h.User.UploadImage)
			}

			authorized.POST("/projects", middleware.BodyLimit(10<<20), h.Project.Create)
			authorized.POST("/comments", h.Comment.Add)
			authorized.POST("/offers", h.Offer.Create)
			authorized.POST("/meetups/:id/join", h.Meetup.Join)
			authorized.POST("/sessions", middleware.BodyLimit(10<<20), h.Session.Create)
			authorized.POST("/sessions/:id/video",
				middleware.BodyLimit(service.MaxVideoSize+(1<<20)), h.Session.UploadVideo)
		}
	}

	return r
}
