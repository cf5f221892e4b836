package app

import (
	"testbank_backend/docs"
	"testbank_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 测评：GET 单资源查询和类型列表共用 :name 段
		api.GET("/assessment/:name", c.assessment.Get)
		api.POST("/assessment", c.assessment.Create)
		api.DELETE("/assessment/:name", c.assessment.Delete)

		// 题目：删除按测评名+题干定位，参数在请求体中
		api.POST("/question", c.question.Create)
		api.DELETE("/question", c.question.Delete)

		// 文章
		api.POST("/passage", c.passage.Create)
	}
}
