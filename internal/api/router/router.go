package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dafa-music/backend/config"
	"dafa-music/backend/internal/api/handler"
	"dafa-music/backend/internal/api/middleware"
	"dafa-music/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API ──
	api := r.Group("/api")
	api.Use(middleware.RateLimit(rdb, 300, time.Minute))
	{
		// 学生模块
		students := api.Group("/students")
		{
			students.GET("", h.Student.List)
			students.POST("", h.Student.Create)
			students.GET("/:id", h.Student.Get)
			students.PUT("/:id", h.Student.Update)
			students.DELETE("/:id", h.Student.Delete)
		}

		// 老师模块
		teachers := api.Group("/teachers")
		{
			teachers.GET("", h.Teacher.List)
			teachers.POST("", h.Teacher.Create)
		}

		// 课程模块
		courses := api.Group("/courses")
		{
			courses.GET("", h.Course.List)
			courses.POST("", h.Course.Create)
		}

		// 报名排课
		api.POST("/enrollments", h.Enrollment.Create)

		// 课堂模块
		lessons := api.Group("/lessons")
		{
			lessons.GET("", h.Lesson.List)
			lessons.GET("/export/xlsx", h.Export.ExportXlsx)
			lessons.GET("/export/ics", h.Export.ExportICS)
			lessons.PATCH("/:id/reschedule", h.Lesson.Reschedule)
			lessons.PATCH("/:id/status", h.Lesson.UpdateStatus)
		}
	}

	return r
}
