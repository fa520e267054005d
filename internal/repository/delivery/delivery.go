package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Bamzhie/errander-api/internal/entities"
	"github.com/Bamzhie/errander-api/internal/repository"
	"github.com/Bamzhie/errander-api/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, tracking_number, status, errander_id, fee,
		sender_id, sender_name, sender_phone1, sender_phone2,
		item_type, item_description, delivery_address,
		recipient_name, recipient_phone, special_instructions,
		created_at, updated_at, estimated_delivery_at, actual_delivery_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (
			tracking_number, status, sender_id, sender_name, sender_phone1, sender_phone2,
			item_type, item_description, delivery_address,
			recipient_name, recipient_phone, special_instructions, estimated_delivery_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + deliveryColumns

	var deliveryDB DeliveryDB
	err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		deliveryModify.TrackingNumber,
		statusString(deliveryModify.Status),
		deliveryModify.SenderID,
		deliveryModify.SenderName,
		deliveryModify.SenderPhone1,
		deliveryModify.SenderPhone2,
		deliveryModify.ItemType,
		deliveryModify.ItemDescription,
		deliveryModify.DeliveryAddress,
		deliveryModify.RecipientName,
		deliveryModify.RecipientPhone,
		deliveryModify.SpecialInstructions,
		deliveryModify.EstimatedDeliveryAt,
	), &deliveryDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("tracking number collision: %w", err)
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	var deliveryDB DeliveryDB
	err := scanDelivery(r.querier.QueryRow(ctx, query, id), &deliveryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

// Update applies a validated status change. Only populated change fields are
// written; the WHERE clause plus the surrounding serializable transaction
// keeps the read-validate-write cycle atomic per delivery.
func (r *Repository) Update(ctx context.Context, id string, change entities.DeliveryStatusChange) (*entities.Delivery, error) {
	builder := qb.Update("deliveries")

	if change.Status != nil {
		builder = builder.Set("status", change.Status.String())
	}
	if change.Errander.Set {
		builder = builder.Set("errander_id", change.Errander.ID)
	}
	if change.Fee != nil {
		builder = builder.Set("fee", change.Fee)
	}
	if change.ActualDeliveryAt != nil {
		builder = builder.Set("actual_delivery_at", change.ActualDeliveryAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryDB DeliveryDB
	err = scanDelivery(r.querier.QueryRow(ctx, query, args...), &deliveryDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func scanDelivery(row pgx.Row, deliveryDB *DeliveryDB) error {
	return row.Scan(
		&deliveryDB.ID,
		&deliveryDB.TrackingNumber,
		&deliveryDB.Status,
		&deliveryDB.ErranderID,
		&deliveryDB.Fee,
		&deliveryDB.SenderID,
		&deliveryDB.SenderName,
		&deliveryDB.SenderPhone1,
		&deliveryDB.SenderPhone2,
		&deliveryDB.ItemType,
		&deliveryDB.ItemDescription,
		&deliveryDB.DeliveryAddress,
		&deliveryDB.RecipientName,
		&deliveryDB.RecipientPhone,
		&deliveryDB.SpecialInstructions,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
		&deliveryDB.EstimatedDeliveryAt,
		&deliveryDB.ActualDeliveryAt,
	)
}

func statusString(status *entities.DeliveryStatusType) *string {
	if status == nil {
		return nil
	}
	value := status.String()
	return &value
}
