package server

import (
	"seed-validator/internal/handler"

	"seed-validator/pkg/monitor"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewHTTPRouter 初始化并返回一个 Gin Engine
func NewHTTPRouter(seedHandler *handler.SeedHandler) *gin.Engine {
	// 0. 初始化监控指标
	monitor.Init()

	// 1. 创建 Engine (使用 Recovery; 不用 gin 默认的访问日志，避免请求体之外的信息泄露到日志)
	r := gin.New()
	r.Use(gin.Recovery())

	// 2. 注册通用中间件
	r.Use(monitor.PrometheusMiddleware())

	// 3. 注册基础路由
	r.GET("/health", handler.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 4. 页面与表单校验 (前端 fetch POST 到同一路径)
	r.GET("/", handler.Index)
	r.POST("/", seedHandler.Validate)

	// 5. 注册 API 路由组
	api := r.Group("/api/v1")
	{
		api.POST("/validate", seedHandler.Validate)
		api.POST("/seed", seedHandler.DeriveSeed)
	}

	return r
}
