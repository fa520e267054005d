//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bamzhie/errander-api/internal/handlers/rest/customer_get"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/customers_get"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/delivery_get"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/delivery_post"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/delivery_status_patch"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/errander_post"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/errander_status_patch"
	"github.com/Bamzhie/errander-api/internal/handlers/rest/erranders_get"
	"github.com/Bamzhie/errander-api/internal/handlers/tasks/keep_alive"
	"github.com/Bamzhie/errander-api/internal/pkg/config"
	"github.com/Bamzhie/errander-api/internal/pkg/uploads"

	customerRepo "github.com/Bamzhie/errander-api/internal/repository/customer"
	deliveryRepo "github.com/Bamzhie/errander-api/internal/repository/delivery"
	erranderRepo "github.com/Bamzhie/errander-api/internal/repository/errander"
	customerService "github.com/Bamzhie/errander-api/internal/service/customer"
	deliveryService "github.com/Bamzhie/errander-api/internal/service/delivery"
	erranderService "github.com/Bamzhie/errander-api/internal/service/errander"

	"github.com/Bamzhie/errander-api/pkg/background"
	"github.com/Bamzhie/errander-api/pkg/logger"
	"github.com/Bamzhie/errander-api/pkg/querier"
	"github.com/Bamzhie/errander-api/pkg/tx"
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceErrander   ServiceErrander
	ServiceCustomer   ServiceCustomer
	UploadsStore      *uploads.Store
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_get.Service
	delivery_status_patch.Service
}

type ServiceErrander interface {
	errander_post.Service
	erranders_get.Service
	errander_status_patch.Service
}

type ServiceCustomer interface {
	customers_get.Service
	customer_get.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideCustomerRepository,
		provideErranderRepository,
		provideDeliveryRepository,

		provideServiceCustomer,
		provideServiceErrander,
		provideServiceDelivery,

		provideUploadsStore,

		provideKeepAliveTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceErrander), new(*erranderService.Errander)),
		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),

		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(erranderService.Repository), new(*erranderRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),

		wire.Bind(new(deliveryService.ErranderService), new(*erranderService.Errander)),
		wire.Bind(new(deliveryService.CustomerService), new(*customerService.Customer)),
		wire.Bind(new(erranderService.CustomerService), new(*customerService.Customer)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(erranderService.TxManager), new(*tx.Manager)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DeliveryService *deliveryService.Delivery
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-delivery-status).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideCustomerRepository,
		provideErranderRepository,
		provideDeliveryRepository,

		provideServiceCustomer,
		provideServiceErrander,
		provideServiceDelivery,

		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(erranderService.Repository), new(*erranderRepo.Repository)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),

		wire.Bind(new(deliveryService.ErranderService), new(*erranderService.Errander)),
		wire.Bind(new(deliveryService.CustomerService), new(*customerService.Customer)),
		wire.Bind(new(erranderService.CustomerService), new(*customerService.Customer)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(erranderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideErranderRepository(querier *querier.Querier) *erranderRepo.Repository {
	return erranderRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideServiceCustomer(repository customerService.Repository) *customerService.Customer {
	return customerService.New(repository)
}

func provideServiceErrander(
	repository erranderService.Repository,
	customerSvc erranderService.CustomerService,
	txManager erranderService.TxManager,
) *erranderService.Errander {
	return erranderService.New(repository, customerSvc, txManager)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	erranderSvc deliveryService.ErranderService,
	customerSvc deliveryService.CustomerService,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(repository, erranderSvc, customerSvc, txManager)
}

func provideUploadsStore(cfg *config.Config) (*uploads.Store, error) {
	return uploads.New(cfg.Uploads.Dir, "/uploads")
}

func provideKeepAliveTask(log logger.Logger, cfg *config.Config) *keep_alive.KeepAlive {
	return keep_alive.NewKeepAlive(log, cfg.Server.BaseURL, cfg.Tasks.KeepAliveInterval)
}

func provideTaskList(keepAliveTask *keep_alive.KeepAlive) []background.Task {
	if keepAliveTask.TTL() <= 0 {
		return nil
	}
	return []background.Task{
		keepAliveTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
