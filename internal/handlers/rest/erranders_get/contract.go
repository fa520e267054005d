//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=erranders_get_test
package erranders_get

import (
	"context"

	"github.com/Bamzhie/errander-api/internal/entities"
	"github.com/Bamzhie/errander-api/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetErrandersWithStats(ctx context.Context, status *entities.ErranderStatusType) ([]entities.ErranderStats, error)
}
