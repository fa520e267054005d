package errander

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Bamzhie/errander-api/internal/entities"
	"github.com/Bamzhie/errander-api/internal/repository"
	"github.com/Bamzhie/errander-api/internal/service/errander"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const erranderColumns = `id, user_id, full_name, phone_number, whatsapp_number, email,
		school, home_address, id_card_url, id_card_file_name,
		status, is_verified, verified_at, verified_by, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userID string, application entities.ErranderApplication) (*entities.Errander, error) {
	query := `
		INSERT INTO erranders (
			user_id, full_name, phone_number, whatsapp_number, email,
			school, home_address, id_card_url, id_card_file_name, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + erranderColumns

	var erranderDB ErranderDB
	err := scanErrander(r.querier.QueryRow(
		ctx,
		query,
		userID,
		application.FullName,
		application.PhoneNumber,
		application.WhatsappNumber,
		application.Email,
		application.School,
		application.HomeAddress,
		application.IDCardURL,
		application.IDCardFileName,
		entities.DefaultErranderStatus.String(),
	), &erranderDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, errander.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("unexpected errander repository create error: %w", err)
	}

	return ToDomain(&erranderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Errander, error) {
	query := `SELECT ` + erranderColumns + `
		FROM erranders
		WHERE id = $1`

	var erranderDB ErranderDB
	err := scanErrander(r.querier.QueryRow(ctx, query, id), &erranderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errander.ErrErranderNotFound
		}
		return nil, fmt.Errorf("unexpected errander repository getbyid error: %w", err)
	}

	return ToDomain(&erranderDB), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*entities.Errander, error) {
	query := `SELECT ` + erranderColumns + `
		FROM erranders
		WHERE user_id = $1`

	var erranderDB ErranderDB
	err := scanErrander(r.querier.QueryRow(ctx, query, userID), &erranderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errander.ErrErranderNotFound
		}
		return nil, fmt.Errorf("unexpected errander repository getbyuserid error: %w", err)
	}

	return ToDomain(&erranderDB), nil
}

func (r *Repository) Update(ctx context.Context, erranderModify entities.ErranderModify) (*entities.Errander, error) {
	builder := qb.Update("erranders")

	if erranderModify.Status != nil {
		builder = builder.Set("status", erranderModify.Status.String())
	}
	if erranderModify.IsVerified != nil {
		builder = builder.Set("is_verified", erranderModify.IsVerified)
	}
	if erranderModify.VerifiedAt != nil {
		builder = builder.Set("verified_at", erranderModify.VerifiedAt)
	}
	if erranderModify.VerifiedBy != nil {
		builder = builder.Set("verified_by", erranderModify.VerifiedBy)
	}
	if erranderModify.IDCardURL != nil {
		builder = builder.Set("id_card_url", erranderModify.IDCardURL)
	}
	if erranderModify.IDCardFileName != nil {
		builder = builder.Set("id_card_file_name", erranderModify.IDCardFileName)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": erranderModify.ID}).
		Suffix("RETURNING " + erranderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected errander repository update error: %w", err)
	}

	var erranderDB ErranderDB
	err = scanErrander(r.querier.QueryRow(ctx, query, args...), &erranderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errander.ErrErranderNotFound
		}
		return nil, fmt.Errorf("unexpected errander repository update error: %w", err)
	}

	return ToDomain(&erranderDB), nil
}

// GetAllWithStats aggregates per-errander delivery counts and earnings in a
// single query. Earnings only count delivered runs.
func (r *Repository) GetAllWithStats(ctx context.Context, status *entities.ErranderStatusType) ([]entities.ErranderStats, error) {
	builder := qb.
		Select(
			"e.id", "e.user_id", "e.full_name", "e.phone_number", "e.whatsapp_number", "e.email",
			"e.school", "e.home_address", "e.id_card_url", "e.id_card_file_name",
			"e.status", "e.is_verified", "e.verified_at", "e.verified_by", "e.created_at", "e.updated_at",
			"COUNT(d.id) FILTER (WHERE d.status = 'DELIVERED')",
			"COALESCE(SUM(d.fee) FILTER (WHERE d.status = 'DELIVERED'), 0)",
			"MAX(d.updated_at)",
		).
		From("erranders e").
		LeftJoin("deliveries d ON d.errander_id = e.id").
		GroupBy("e.id").
		OrderBy("e.created_at DESC")

	if status != nil {
		builder = builder.Where(sq.Eq{"e.status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected errander repository getallwithstats error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected errander repository getallwithstats error: %w", err)
	}
	defer rows.Close()

	statsModels := make([]ErranderStatsDB, 0, 8)
	for rows.Next() {
		var statsDB ErranderStatsDB
		err := rows.Scan(
			&statsDB.Errander.ID,
			&statsDB.Errander.UserID,
			&statsDB.Errander.FullName,
			&statsDB.Errander.PhoneNumber,
			&statsDB.Errander.WhatsappNumber,
			&statsDB.Errander.Email,
			&statsDB.Errander.School,
			&statsDB.Errander.HomeAddress,
			&statsDB.Errander.IDCardURL,
			&statsDB.Errander.IDCardFileName,
			&statsDB.Errander.Status,
			&statsDB.Errander.IsVerified,
			&statsDB.Errander.VerifiedAt,
			&statsDB.Errander.VerifiedBy,
			&statsDB.Errander.CreatedAt,
			&statsDB.Errander.UpdatedAt,
			&statsDB.TotalDeliveries,
			&statsDB.Earnings,
			&statsDB.LastActiveAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected errander repository getallwithstats error: %w", err)
		}
		statsModels = append(statsModels, statsDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected errander repository getallwithstats error: %w", err)
	}

	return ToStatsDomainList(statsModels), nil
}

func scanErrander(row pgx.Row, erranderDB *ErranderDB) error {
	return row.Scan(
		&erranderDB.ID,
		&erranderDB.UserID,
		&erranderDB.FullName,
		&erranderDB.PhoneNumber,
		&erranderDB.WhatsappNumber,
		&erranderDB.Email,
		&erranderDB.School,
		&erranderDB.HomeAddress,
		&erranderDB.IDCardURL,
		&erranderDB.IDCardFileName,
		&erranderDB.Status,
		&erranderDB.IsVerified,
		&erranderDB.VerifiedAt,
		&erranderDB.VerifiedBy,
		&erranderDB.CreatedAt,
		&erranderDB.UpdatedAt,
	)
}
