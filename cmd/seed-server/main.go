package main

import (
	"seed-validator/internal/handler"
	"seed-validator/internal/server"
	"seed-validator/internal/service"

	"seed-validator/pkg/bip39"
	"seed-validator/pkg/config"
	"seed-validator/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Seed Validator API
// @version 1.0
// @description BIP-39 seed phrase validation server
// @BasePath /
func main() {
	// 0. 初始化 Config
	config.Init()

	// 1. 初始化 Logger
	logger.Init(config.Global.App.Env, config.Global.App.LogLevel)
	defer logger.Sync()

	if config.Global.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. 初始化校验服务
	policy := bip39.Policy{RejectDuplicates: config.Global.Bip39.RejectDuplicates}
	seedService := service.NewSeedService(policy)
	logger.Info("Seed service ready",
		zap.Bool("reject_duplicates", policy.RejectDuplicates),
		zap.Int("max_phrase_bytes", config.Global.Bip39.MaxPhraseBytes))

	// 3. HTTP Router
	seedHandler := handler.NewSeedHandler(seedService, config.Global.Bip39.MaxPhraseBytes)
	r := server.NewHTTPRouter(seedHandler)

	// 4. 启动应用
	app := server.New(server.Config{
		HttpPort:     config.Global.App.HttpPort,
		ReadTimeout:  config.Global.App.ReadTimeout,
		WriteTimeout: config.Global.App.WriteTimeout,
	}, r)

	// 运行 (阻塞)
	app.Run()
	logger.Info("系统已退出")
}
