package core

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// WithWorkers limits how many goroutines a parallel evaluation may use.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// Workers returns the limit set by WithWorkers, or defaultMaxWorkers when
// none (or a non-positive one) was set.
func Workers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return max(defaultMaxWorkers, 1)
}
