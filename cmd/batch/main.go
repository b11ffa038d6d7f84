package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/st970703/step-function-map-io/config"
	"github.com/st970703/step-function-map-io/internal/reader"
	"github.com/st970703/step-function-map-io/task"
	"go.uber.org/zap"
)

type result struct {
	Source string `json:"source"`
	*task.OutputPayload
}

func main() {
	cfg, err := config.LoadEnvs()
	if err != nil {
		log.Fatalf("fail to load envs: %v", err)
	}

	if len(os.Args) > 1 {
		cfg.PayloadPath = os.Args[1]
	}
	if cfg.PayloadPath == "" {
		log.Fatal("PAYLOAD_PATH is required")
	}

	l, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("fail to build logger: %v", err)
	}
	defer l.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	docReader := reader.NewFileReader(cfg.PayloadPath, l)
	service := task.NewService(cfg.MaxConcurrency, docReader, l)

	enc := json.NewEncoder(os.Stdout)

	l.Info("batch split started", zap.String("path", cfg.PayloadPath))
	err = service.SplitFiles(ctx, func(source string, out *task.OutputPayload) error {
		return enc.Encode(result{Source: source, OutputPayload: out})
	})
	if err != nil {
		l.Fatal("batch split failed", zap.Error(err))
	}
}
