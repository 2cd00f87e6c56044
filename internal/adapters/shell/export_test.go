package shell

import "go.trai.ch/liner/internal/core/ports"

// NewPipeExecutorForTest exports newPipeExecutor for testing purposes.
func NewPipeExecutorForTest(logger ports.Logger) *Executor {
	return newPipeExecutor(logger)
}
