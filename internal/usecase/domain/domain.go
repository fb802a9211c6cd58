package domain

import (
	"context"
	"time"

	"github.com/Harshvardhan-91/Project-Management/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx            context.Context
	log            *zap.SugaredLogger
	repo           repository.Repository
	timeout        time.Duration
	minQueryLength int
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	minQueryLength int,
) *Usecase {
	return &Usecase{
		ctx:            ctx,
		log:            log.Named("usecase"),
		repo:           repo,
		timeout:        timeout,
		minQueryLength: minQueryLength,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
