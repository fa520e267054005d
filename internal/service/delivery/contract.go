//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"github.com/Bamzhie/errander-api/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
	Update(ctx context.Context, id string, change entities.DeliveryStatusChange) (*entities.Delivery, error)
}

type ErranderService interface {
	GetErrander(ctx context.Context, id string) (*entities.Errander, error)
	UpdateErrander(ctx context.Context, erranderModify entities.ErranderModify) (*entities.Errander, error)
}

type CustomerService interface {
	FindOrCreateByPhone(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
