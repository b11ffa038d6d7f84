// Package lambdahandler adapts the batch splitter to the AWS Lambda runtime.
// Step Functions invokes it with the whole state as payload and replaces the
// state with the returned Tasks.
package lambdahandler

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/st970703/step-function-map-io/task"
	"go.uber.org/zap"
)

type Handler struct {
	service task.Usecase
	logger  *zap.Logger
}

func NewHandler(s task.Usecase, l *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  l,
	}
}

// Handle decodes the raw event and splits it. Errors are returned as is so the
// invocation fails and the state machine applies its own retry policy.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (*task.OutputPayload, error) {
	logger := h.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With(zap.String("aws_request_id", lc.AwsRequestID))
	}

	payload, err := task.DecodeInput(event)
	if err != nil {
		logger.Error("invalid event", zap.Error(err))
		return nil, err
	}

	out, err := h.service.Split(ctx, payload)
	if err != nil {
		logger.Error("split failed", zap.Error(err))
		return nil, err
	}

	return out, nil
}
