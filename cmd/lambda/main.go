package main

import (
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/st970703/step-function-map-io/config"
	"github.com/st970703/step-function-map-io/internal/lambdahandler"
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
	handler := lambdahandler.NewHandler(service, l)

	l.Info("lambda ready", zap.Int("max_concurrency", cfg.MaxConcurrency))
	lambda.Start(handler.Handle)
}
