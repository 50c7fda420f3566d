package app

import (
	"manhaj_backend/docs"
	"manhaj_backend/internal/config"
	"manhaj_backend/internal/middleware"
	"manhaj_backend/internal/model"
	"manhaj_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c, cfg)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// Guests may browse the tree and the game registry.
		public.GET("/content/tree", middleware.TryAuthMiddleware(cfg), c.contentTree.GetTree)
		public.GET("/games", c.game.List)
		public.GET("/games/slug/:slug", c.game.GetBySlug)
		public.GET("/games/:id/scores", c.game.TopScores)
	}
}

// registerStudentRoutes holds the endpoints every authenticated user gets.
func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/me", c.auth.Me)
	rg.GET("/users/profile", c.user.GetProfile)
	rg.PUT("/users/profile", c.user.UpdateProfile)
	rg.POST("/users/avatar", c.user.UploadAvatar)

	rg.GET("/documents", c.document.List)
	rg.GET("/videos", c.video.List)

	// Mini projects: students own their content, staff own the status.
	rg.GET("/projects/mine", c.miniProject.ListMine)
	rg.POST("/projects", c.miniProject.Create)
	rg.PUT("/projects/:id", c.miniProject.UpdateContent)

	rg.GET("/calendar/events", c.calendar.GetEvents)
	rg.POST("/calendar/events", c.calendar.CreateEvent)
	rg.PUT("/calendar/events/:id", c.calendar.UpdateEvent)
	rg.DELETE("/calendar/events/:id", c.calendar.DeleteEvent)
	rg.GET("/calendar/settings", c.calendar.GetSettings)
	rg.PUT("/calendar/settings", c.calendar.SaveSettings)

	rg.POST("/games/:id/sessions", c.game.StartSession)
	rg.POST("/games/:id/scores", c.game.RecordScore)
}

// registerTeacherRoutes holds content management, available to staff roles.
func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	staff := rg.Group("/")
	staff.Use(middleware.RoleMiddleware(model.Teacher, model.SchoolAdmin))
	{
		staff.POST("/content/sections", c.contentTree.CreateSection)
		staff.PUT("/content/sections/reorder", c.contentTree.ReorderSections)
		staff.PUT("/content/sections/:id", c.contentTree.UpdateSection)
		staff.DELETE("/content/sections/:id", c.contentTree.DeleteSection)
		staff.PUT("/content/sections/:id/topics/reorder", c.contentTree.ReorderTopics)

		staff.POST("/content/topics", c.contentTree.CreateTopic)
		staff.PUT("/content/topics/:id", c.contentTree.UpdateTopic)
		staff.DELETE("/content/topics/:id", c.contentTree.DeleteTopic)
		staff.PUT("/content/topics/:id/lessons/reorder", c.contentTree.ReorderLessons)

		staff.POST("/content/lessons", c.contentTree.CreateLesson)
		staff.PUT("/content/lessons/:id", c.contentTree.UpdateLesson)
		staff.DELETE("/content/lessons/:id", c.contentTree.DeleteLesson)
		staff.PUT("/content/lessons/:id/media/reorder", c.contentTree.ReorderMedia)

		staff.POST("/content/media", c.contentTree.CreateMedia)
		staff.PUT("/content/media/:id", c.contentTree.UpdateMedia)
		staff.DELETE("/content/media/:id", c.contentTree.DeleteMedia)

		staff.POST("/documents", c.document.Create)
		staff.POST("/documents/bulk", c.document.BulkUpload)
		staff.GET("/documents/bulk/:identifier/progress", c.document.BulkProgress)
		staff.PUT("/documents/:id", c.document.Update)
		staff.DELETE("/documents/:id", c.document.Delete)
		staff.PATCH("/documents/:id/roles", c.document.ToggleRole)

		staff.POST("/videos", c.video.CreateFromURL)
		staff.POST("/videos/upload", c.video.Upload)
		staff.PUT("/videos/:id", c.video.Update)
		staff.DELETE("/videos/:id", c.video.Delete)

		staff.GET("/questions", c.question.List)
		staff.POST("/questions", c.question.Create)
		staff.PUT("/questions/:id", c.question.Update)
		staff.DELETE("/questions/:id", c.question.Delete)

		staff.GET("/projects", c.miniProject.List)
		staff.PATCH("/projects/:id/status", c.miniProject.UpdateStatus)
		staff.DELETE("/projects/:id", c.miniProject.Delete)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.SchoolAdmin),
	)
	{
		admin.GET("/users", c.user.List)
		admin.PATCH("/users/:id/role", c.user.SetRole)
		admin.PATCH("/users/:id/disabled", c.user.SetDisabled)
		admin.DELETE("/users/:id", c.user.Delete)

		admin.GET("/schools", c.school.List)
		admin.POST("/schools", c.school.Create)
		admin.PUT("/schools/:id", c.school.Update)
		admin.DELETE("/schools/:id", c.school.Delete)

		admin.PATCH("/games/:id/enabled", c.game.SetEnabled)
		admin.POST("/games/stats/reset", c.game.ResetStats)
	}
}
