// Package consumer contains interface of session actions consumer.
package consumer

import (
	"context"

	"github.com/wellness-hub/wellness/internal/health"
)

//go:generate mockgen -destination=./mock/consumer.go -package=mock -source=consumer.go

// Consumer consumes session actions from an external source and applies them.
type Consumer interface {
	health.Pinger

	// Run blocks until the source is drained or ctx is done.
	Run(ctx context.Context) error
}
