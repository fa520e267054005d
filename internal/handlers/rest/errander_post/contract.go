//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errander_post_test
package errander_post

import (
	"context"
	"io"

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
	SubmitApplication(ctx context.Context, application entities.ErranderApplication) (*entities.Errander, error)
}

type FileStore interface {
	Save(fieldName, originalName string, size int64, content io.Reader) (fileName, fileURL string, err error)
}
