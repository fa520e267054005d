//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_status_requested_test
package delivery_status_requested

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
	UpdateDeliveryStatus(ctx context.Context, id string, req entities.DeliveryStatusRequest) (*entities.DeliveryView, error)
}
