package usecase

import (
	"context"
	"time"

	"github.com/Harshvardhan-91/Project-Management/internal/repository"
	"github.com/Harshvardhan-91/Project-Management/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	SearchUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
	UserUsecaseInterface
	TeamUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration, minQueryLength int) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, minQueryLength)
}
