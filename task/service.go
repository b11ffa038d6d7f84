package task

import (
	"context"
	"fmt"

	"github.com/st970703/step-function-map-io/internal/batcher"
	"github.com/st970703/step-function-map-io/internal/metrics"
	"github.com/st970703/step-function-map-io/internal/reader"
	"go.uber.org/zap"
)

type Service struct {
	batchSize int
	docreader reader.Reader
	logger    *zap.Logger
}

// NewService returns a service splitting into groups of batchSize. docreader
// is only used by SplitFiles and may be nil otherwise.
func NewService(batchSize int, docreader reader.Reader, l *zap.Logger) *Service {
	return &Service{
		batchSize: batchSize,
		docreader: docreader,
		logger:    l,
	}
}

func (s *Service) Split(ctx context.Context, payload InputPayload) (*OutputPayload, error) {
	s.logger.Info("payload received", zap.Object("payload", payload))

	out, err := s.split(payload)
	metrics.ObserveSplit(len(payload.ResourcePaths), len(out.GetTasks()), err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("tasks created",
		zap.Int("tasks", len(out.Tasks)),
		zap.Int("batch_size", s.batchSize),
	)
	return out, nil
}

func (s *Service) SplitFiles(ctx context.Context, emit EmitFunc) error {
	if s.docreader == nil {
		return fmt.Errorf("no payload reader configured")
	}

	s.logger.Info("reading payload files...")
	docsChan, errChan := s.docreader.Read(ctx)

	for {
		select {
		case doc, ok := <-docsChan:
			if !ok {
				return drainErr(errChan)
			}
			if err := s.processDocument(ctx, doc, emit); err != nil {
				return err
			}

		case err, ok := <-errChan:
			if ok {
				return fmt.Errorf("file read error: %w", err)
			}
			errChan = nil

		case <-ctx.Done():
			s.logger.Info("context canceled")
			return ctx.Err()
		}
	}
}

func (s *Service) processDocument(ctx context.Context, doc reader.Document, emit EmitFunc) error {
	payload, err := DecodeInput(doc.Data)
	if err != nil {
		return fmt.Errorf("decode error in file %s: %w", doc.Source, err)
	}

	out, err := s.Split(ctx, payload)
	if err != nil {
		return fmt.Errorf("split error in file %s: %w", doc.Source, err)
	}

	if err := emit(doc.Source, out); err != nil {
		return fmt.Errorf("emit error in file %s: %w", doc.Source, err)
	}

	return nil
}

func (s *Service) split(payload InputPayload) (*OutputPayload, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	batches, err := batcher.Batch(payload.ResourcePaths, s.batchSize)
	if err != nil {
		return nil, fmt.Errorf("batch error: %w", err)
	}

	input := BatchInput{
		BaseUrl:      payload.BaseUrl,
		LambdaConcur: payload.LambdaConcur,
	}

	tasks := make([]Task, 0, len(batches))
	for _, batch := range batches {
		tasks = append(tasks, Task{
			ResourcePaths: batch,
			BatchInput:    input,
		})
	}

	return &OutputPayload{Tasks: tasks}, nil
}

// GetTasks is nil-safe.
func (o *OutputPayload) GetTasks() []Task {
	if o == nil {
		return nil
	}
	return o.Tasks
}

// drainErr reports an error still pending once the documents channel closed.
func drainErr(errChan <-chan error) error {
	if errChan == nil {
		return nil
	}
	if err, ok := <-errChan; ok {
		return fmt.Errorf("file read error: %w", err)
	}
	return nil
}
