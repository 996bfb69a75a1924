package worker

import (
	"context"
)

// Worker is a background task with a lifecycle the manager controls.
type Worker interface {
	// Start runs the worker until its context ends or Stop is called.
	Start(ctx context.Context) error

	// Stop requests a graceful stop.
	Stop() error

	// Name identifies the worker in logs.
	Name() string
}
