package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/w4d32001/admin-eapiis/config"
	"github.com/w4d32001/admin-eapiis/internal/api/handler"
	"github.com/w4d32001/admin-eapiis/internal/api/middleware"
	"github.com/w4d32001/admin-eapiis/internal/model"
	"github.com/w4d32001/admin-eapiis/pkg/jwt"
	"github.com/w4d32001/admin-eapiis/pkg/metrics"
	"github.com/w4d32001/admin-eapiis/pkg/redis"
)

// Setup builds the gin engine. rdb may be nil, token revocation is then disabled.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// a nil *redis.Client must not end up inside a non-nil interface
	var revoked middleware.Revocations
	if rdb != nil {
		revoked = rdb
	}

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyMB << 20))

	// ── health / metrics ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ── public site ──
	public := r.Group("/api")
	{
		public.GET("/news", h.Public.News)
		public.GET("/galleries", h.Public.Galleries)
		public.GET("/semesters", h.Public.Semesters)
		public.GET("/teachers", h.Public.Teachers)
		public.GET("/settings", h.Public.Settings)
	}

	// ── auth ──
	r.POST("/auth/login", h.Auth.Login)

	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, revoked))
	{
		authorized.POST("/auth/logout", h.Auth.Logout)
		authorized.GET("/auth/me", h.Auth.Me)

		authorized.GET("/dashboard", h.Dashboard.Summary)

		teacherTypes := authorized.Group("/teacher-types")
		{
			teacherTypes.GET("", h.TeacherCategory.List)
			teacherTypes.POST("", h.TeacherCategory.Create)
			teacherTypes.POST("/:id", h.TeacherCategory.Update)
			teacherTypes.DELETE("/:id", h.TeacherCategory.Delete)
		}

		teachers := authorized.Group("/teachers")
		{
			teachers.GET("", h.Teacher.Index)
			teachers.GET("/export", h.Export.ExportTeachers)
			teachers.POST("", h.Teacher.Create)
			teachers.POST("/:id", h.Teacher.Update)
			teachers.DELETE("/:id", h.Teacher.Delete)
		}

		news := authorized.Group("/news")
		{
			news.GET("", h.News.List)
			news.POST("", h.News.Create)
			news.POST("/:id", h.News.Update)
			news.DELETE("/:id", h.News.Delete)
			news.PATCH("/:id/toggle-status", h.News.ToggleStatus)
		}

		galleries := authorized.Group("/galleries")
		{
			galleries.GET("", h.Gallery.List)
			galleries.POST("", h.Gallery.Create)
			galleries.POST("/:id", h.Gallery.Update)
			galleries.DELETE("/:id", h.Gallery.Delete)
		}

		semesters := authorized.Group("/semesters")
		{
			semesters.GET("", h.Semester.List)
			semesters.POST("", h.Semester.Create)
			semesters.POST("/:id", h.Semester.Update)
			semesters.DELETE("/:id", h.Semester.Delete)
			semesters.PATCH("/:id/toggle-status", h.Semester.ToggleStatus)
		}

		settings := authorized.Group("/settings")
		{
			settings.GET("", h.SiteSetting.List)
			settings.POST("", h.SiteSetting.Save)
		}

		users := authorized.Group("/users")
		{
			users.GET("", h.User.List)
			users.POST("", middleware.RoleAuth(model.RoleAdmin), h.User.Create)
			users.DELETE("/:id", h.User.Delete)
			users.DELETE("/:id/force", middleware.RoleAuth(model.RoleAdmin), h.User.ForceDelete)
		}
	}

	return r
}
