//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"github.com/Bamzhie/errander-api/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error)
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
	GetByPhone(ctx context.Context, phone string, userType entities.UserType) (*entities.Customer, error)
	GetStatsByID(ctx context.Context, id string) (*entities.CustomerStats, error)
	GetAllWithStats(ctx context.Context) ([]entities.CustomerStats, error)
}
