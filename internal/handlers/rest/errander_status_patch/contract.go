//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errander_status_patch_test
package errander_status_patch

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
	UpdateErrander(ctx context.Context, erranderModify entities.ErranderModify) (*entities.Errander, error)
}
