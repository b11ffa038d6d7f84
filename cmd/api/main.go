package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/st970703/step-function-map-io/config"
	"github.com/st970703/step-function-map-io/internal/controllers"
	"github.com/st970703/step-function-map-io/internal/middleware"
	"github.com/st970703/step-function-map-io/task"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadEnvs()
	if err != nil {
		log.Fatalf("fail to load envs: %v", err)
	}

	l, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("fail to build logger: %v", err)
	}
	defer l.Sync() //nolint:errcheck

	service := task.NewService(cfg.MaxConcurrency, nil, l)
	controller := controllers.NewController(service, l)

	router := setupRouter(controller, l)

	l.Info("starting server",
		zap.String("port", cfg.ServerPort),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
	)
	err = router.Run(fmt.Sprintf(":%s", cfg.ServerPort))
	if err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}

func setupRouter(ctrl *controllers.Controller, l *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(l))
	r.GET("/healthz", ctrl.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/api/v1/batches", ctrl.CreateBatches)
	return r
}
