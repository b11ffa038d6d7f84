package task

import (
	"context"

	"go.uber.org/zap/zapcore"
)

// BatchInput is the context shared by every task of one invocation.
type BatchInput struct {
	BaseUrl      string `json:"BaseUrl"`
	LambdaConcur string `json:"LambdaConcur"`
}

// InputPayload is the state the orchestrator hands to the splitter.
type InputPayload struct {
	BaseUrl       string   `json:"BaseUrl"`
	LambdaConcur  string   `json:"LambdaConcur"`
	ResourcePaths []string `json:"ResourcePaths"`
}

// Task is one unit of work for a downstream Map iteration.
type Task struct {
	ResourcePaths []string   `json:"ResourcePaths"`
	BatchInput    BatchInput `json:"BatchInput"`
}

// OutputPayload replaces the state; the Map step iterates over Tasks.
type OutputPayload struct {
	Tasks []Task `json:"Tasks"`
}

func (p InputPayload) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("BaseUrl", p.BaseUrl)
	enc.AddString("LambdaConcur", p.LambdaConcur)
	enc.AddInt("ResourcePathsCount", len(p.ResourcePaths))
	return enc.AddArray("ResourcePaths", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, path := range p.ResourcePaths {
			arr.AppendString(path)
		}
		return nil
	}))
}

type Usecase interface {
	// Split the resource paths of a payload into tasks of at most the configured group size.
	Split(ctx context.Context, payload InputPayload) (*OutputPayload, error)
	// Split every payload document provided by the reader, handing each result to emit.
	SplitFiles(ctx context.Context, emit EmitFunc) error
}

// EmitFunc receives the output for one payload document.
type EmitFunc func(source string, out *OutputPayload) error
