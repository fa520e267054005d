package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Bamzhie/errander-api/internal/entities"
	"github.com/Bamzhie/errander-api/internal/repository"
	"github.com/Bamzhie/errander-api/internal/service/customer"
)

const customerColumns = `id, full_name, phone1, phone2, email, user_type, created_at, updated_at`

const customerStatsSelect = `
		SELECT
			u.id, u.full_name, u.phone1, u.phone2, u.email, u.user_type, u.created_at, u.updated_at,
			COUNT(d.id),
			COALESCE(SUM(d.fee), 0),
			MAX(d.created_at)
		FROM users u
		LEFT JOIN deliveries d ON d.sender_id = u.id
		WHERE u.user_type = 'customer'`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	query := `
		INSERT INTO users (full_name, phone1, phone2, email, user_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns

	userType := entities.UserCustomer
	if customerModify.UserType != nil {
		userType = *customerModify.UserType
	}

	var customerDB CustomerDB
	err := scanCustomer(r.querier.QueryRow(
		ctx,
		query,
		customerModify.FullName,
		customerModify.Phone1,
		customerModify.Phone2,
		customerModify.Email,
		userType.String(),
	), &customerDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customer.ErrPhoneAlreadyRegistered
		}
		return nil, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return ToDomain(&customerDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM users
		WHERE id = $1`

	var customerDB CustomerDB
	err := scanCustomer(r.querier.QueryRow(ctx, query, id), &customerDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(&customerDB), nil
}

func (r *Repository) GetByPhone(ctx context.Context, phone string, userType entities.UserType) (*entities.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM users
		WHERE phone1 = $1 AND user_type = $2`

	var customerDB CustomerDB
	err := scanCustomer(r.querier.QueryRow(ctx, query, phone, userType.String()), &customerDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbyphone error: %w", err)
	}

	return ToDomain(&customerDB), nil
}

func (r *Repository) GetStatsByID(ctx context.Context, id string) (*entities.CustomerStats, error) {
	query := customerStatsSelect + ` AND u.id = $1
		GROUP BY u.id`

	var statsDB CustomerStatsDB
	err := scanCustomerStats(r.querier.QueryRow(ctx, query, id), &statsDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getstatsbyid error: %w", err)
	}

	stats := ToStatsDomain(&statsDB)
	return &stats, nil
}

// GetAllWithStats aggregates order counts and spend per customer in a single
// query for the admin dashboard.
func (r *Repository) GetAllWithStats(ctx context.Context) ([]entities.CustomerStats, error) {
	query := customerStatsSelect + `
		GROUP BY u.id
		ORDER BY u.created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getallwithstats error: %w", err)
	}
	defer rows.Close()

	statsModels := make([]CustomerStatsDB, 0, 8)
	for rows.Next() {
		var statsDB CustomerStatsDB
		err := scanCustomerStats(rows, &statsDB)
		if err != nil {
			return nil, fmt.Errorf("unexpected customer repository getallwithstats error: %w", err)
		}
		statsModels = append(statsModels, statsDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getallwithstats error: %w", err)
	}

	return ToStatsDomainList(statsModels), nil
}

func scanCustomer(row pgx.Row, customerDB *CustomerDB) error {
	return row.Scan(
		&customerDB.ID,
		&customerDB.FullName,
		&customerDB.Phone1,
		&customerDB.Phone2,
		&customerDB.Email,
		&customerDB.UserType,
		&customerDB.CreatedAt,
		&customerDB.UpdatedAt,
	)
}

func scanCustomerStats(row pgx.Row, statsDB *CustomerStatsDB) error {
	return row.Scan(
		&statsDB.Customer.ID,
		&statsDB.Customer.FullName,
		&statsDB.Customer.Phone1,
		&statsDB.Customer.Phone2,
		&statsDB.Customer.Email,
		&statsDB.Customer.UserType,
		&statsDB.Customer.CreatedAt,
		&statsDB.Customer.UpdatedAt,
		&statsDB.TotalOrders,
		&statsDB.TotalSpent,
		&statsDB.LastOrderAt,
	)
}
