package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmadmin/internal/dashboard"
	"pharmadmin/internal/fetcher"
	"pharmadmin/pkg/config"
	"pharmadmin/pkg/flash"
	"pharmadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	if err := logger.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	appLogger := logger.GetLogger()
	appLogger.Info("Starting PharmAdmin Dashboard...")

	// 一次性提示存储
	notices := flash.NewStore(&cfg.Redis)
	defer func() {
		if err := notices.Close(); err != nil {
			appLogger.Error("Failed to close notice store:", err)
		}
	}()

	// 资源API客户端
	api := fetcher.New(&cfg.API)

	// 设置Gin模式
	gin.SetMode(cfg.Dashboard.Mode)

	// 设置路由
	r := dashboard.SetupRouter(api, notices)

	// 启动服务器
	server := &http.Server{
		Addr:         ":" + cfg.Dashboard.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// 启动服务
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	appLogger.Infof("Dashboard started on port %s, API base %s", cfg.Dashboard.Port, cfg.API.BaseURL)

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down dashboard...")
	if err := server.Close(); err != nil {
		appLogger.Error("Server forced to shutdown:", err)
	}
	appLogger.Info("Dashboard exited")
}
