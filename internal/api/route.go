package api

import (
	"Curatia/internal/api/middleware"
	"Curatia/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		listGroup := apiGroup.Group("/lists")
		{
			listGroup.GET("/trending", group.TrendingHandler.GetTrendingLists)

			authGroup := listGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/:list_id/score", group.TrendingHandler.GetListScore)
			}
		}

		itemGroup := apiGroup.Group("/items")
		{
			authOptGroup := itemGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:item_id", group.ModerationHandler.GetItem)
			}

			authGroup := itemGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:item_id/report", group.ModerationHandler.ReportItem)
			}

			// 审核视角
			auditGroup := itemGroup.Group("")
			auditGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("AUDIT", "ADMIN"))
			{
				auditGroup.GET("/:item_id/moderation", group.ModerationHandler.GetModerationState)
			}
		}

		reportGroup := apiGroup.Group("/reports")
		reportGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("AUDIT", "ADMIN"))
		{
			reportGroup.PUT("/:report_id/resolve", group.ModerationHandler.ResolveReport)
		}

		featuredGroup := apiGroup.Group("/featured")
		featuredGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
		{
			featuredGroup.GET("/rotation", group.RotationHandler.GetRotationSuggestion)
		}

		curatorGroup := apiGroup.Group("/curators")
		{
			curatorGroup.GET("/leaderboard", group.CuratorHandler.GetLeaderboard)
			curatorGroup.GET("/:user_id/progress", group.CuratorHandler.GetProgress)

			authGroup := curatorGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/me/progress", group.CuratorHandler.GetSelfProgress)
			}

			adminGroup := curatorGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles("ADMIN"))
			{
				adminGroup.POST("/:user_id/sync", group.CuratorHandler.SyncProfile)
			}
		}
	}

	return r
}
