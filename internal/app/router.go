package app

import (
	"github.com/WaseemSyawish/lingua/docs"
	"github.com/WaseemSyawish/lingua/internal/config"
	"github.com/WaseemSyawish/lingua/internal/middleware"
	"github.com/WaseemSyawish/lingua/internal/model"
	"github.com/WaseemSyawish/lingua/pkg/monitoring"
	"github.com/WaseemSyawish/lingua/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, limiters *rateLimiters, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		authLimited := public.Group("/")
		authLimited.Use(ratelimit.Middleware(limiters.auth, "auth"))
		{
			authLimited.POST("/register", c.auth.Register)
			authLimited.POST("/login", c.auth.Login)
		}
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/me", c.auth.Me)
		authGroup.PUT("/user/name", c.user.UpdateName)
		authGroup.POST("/user/avatar", c.user.UploadAvatar)

		// 会话生命周期
		authGroup.GET("/sessions", c.session.List)
		authGroup.POST("/sessions", c.session.Create)
		authGroup.GET("/sessions/:id", c.session.Get)
		authGroup.POST("/sessions/:id/end", c.session.End)
		authGroup.POST("/sessions/:id/analyze",
			ratelimit.Middleware(limiters.analysis, "analysis"), c.session.Analyze)

		// 对话
		authGroup.POST("/chat/stream",
			ratelimit.Middleware(limiters.chat, "chat"), c.chat.Stream)

		// 定级
		authGroup.POST("/placement/analyze",
			ratelimit.Middleware(limiters.analysis, "analysis"), c.placement.Analyze)
		authGroup.POST("/placement/skip", c.placement.Skip)

		// 进度
		authGroup.GET("/progress", c.progress.Overview)
		authGroup.POST("/progress/assess-level", c.progress.AssessLevel)
	}

	// 管理端
	adminGroup := authGroup.Group("/admin")
	adminGroup.Use(middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/assess-levels", c.admin.AssessLevels)
	}
}
