//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=errander_test
package errander

import (
	"context"

	"github.com/Bamzhie/errander-api/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userID string, application entities.ErranderApplication) (*entities.Errander, error)
	GetByID(ctx context.Context, id string) (*entities.Errander, error)
	GetByUserID(ctx context.Context, userID string) (*entities.Errander, error)
	Update(ctx context.Context, erranderModify entities.ErranderModify) (*entities.Errander, error)
	GetAllWithStats(ctx context.Context, status *entities.ErranderStatusType) ([]entities.ErranderStats, error)
}

type CustomerService interface {
	FindOrCreateByPhone(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
