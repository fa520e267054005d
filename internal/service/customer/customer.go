package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Bamzhie/errander-api/internal/entities"
)

type Customer struct {
	repository Repository
}

func New(repository Repository) *Customer {
	return &Customer{
		repository: repository,
	}
}

// FindOrCreateByPhone resolves a user by primary phone, creating the account
// on first contact. It runs inside the caller's transaction when one is
// active on the context.
func (s *Customer) FindOrCreateByPhone(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.Phone1 == nil || strings.TrimSpace(*customerModify.Phone1) == "" ||
		customerModify.FullName == nil || strings.TrimSpace(*customerModify.FullName) == "" {
		return nil, ErrMissingRequiredFields
	}

	userType := entities.UserCustomer
	if customerModify.UserType != nil {
		userType = *customerModify.UserType
	}

	existing, err := s.repository.GetByPhone(ctx, *customerModify.Phone1, userType)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrCustomerNotFound) {
		return nil, fmt.Errorf("find customer by phone: %w", err)
	}

	created, err := s.repository.Create(ctx, customerModify)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return created, nil
}

func (s *Customer) GetCustomerStats(ctx context.Context, id string) (*entities.CustomerStats, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidCustomerID
	}

	stats, err := s.repository.GetStatsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return stats, nil
}

func (s *Customer) GetCustomersWithStats(ctx context.Context) ([]entities.CustomerStats, error) {
	stats, err := s.repository.GetAllWithStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}
	return stats, nil
}
